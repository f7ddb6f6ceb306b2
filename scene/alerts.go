package scene

import "time"

type (
	// Alerts is the queue of short messages shown to the user. Alerts fade in,
	// stay for their duration and fade out. An alert with a name replaces the
	// earlier alert with the same name instead of stacking.
	Alerts struct {
		alerts []Alert
	}

	Alert struct {
		Name      string
		Priority  AlertPriority
		Message   string
		Duration  time.Duration
		FadeLevel float64
	}

	AlertPriority int
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

const (
	defaultAlertDuration = 3 * time.Second
	alertFadeTime        = 150 * time.Millisecond
)

func (m *Alerts) Add(message string, priority AlertPriority) {
	m.AddAlert(Alert{Priority: priority, Message: message, Duration: defaultAlertDuration})
}

func (m *Alerts) AddNamed(name, message string, priority AlertPriority) {
	m.AddAlert(Alert{Name: name, Priority: priority, Message: message, Duration: defaultAlertDuration})
}

func (m *Alerts) AddAlert(a Alert) {
	if a.Duration <= 0 {
		a.Duration = defaultAlertDuration
	}
	if a.Name != "" {
		for i := range m.alerts {
			if m.alerts[i].Name == a.Name {
				a.FadeLevel = m.alerts[i].FadeLevel
				m.alerts[i] = a
				return
			}
		}
	}
	m.alerts = append(m.alerts, a)
}

func (m *Alerts) ClearNamed(name string) {
	for i := range m.alerts {
		if m.alerts[i].Name == name {
			m.alerts[i].Duration = 0
		}
	}
}

// Update advances the alerts by d and drops the ones that have faded out.
// Returns true if any alert is still visible or animating.
func (m *Alerts) Update(d time.Duration) bool {
	fade := float64(d) / float64(alertFadeTime)
	ret := m.alerts[:0]
	for _, a := range m.alerts {
		if a.Duration > 0 {
			a.Duration -= d
			a.FadeLevel = min(a.FadeLevel+fade, 1)
		} else {
			a.FadeLevel -= fade
		}
		if a.Duration > 0 || a.FadeLevel > 0 {
			ret = append(ret, a)
		}
	}
	clear(m.alerts[len(ret):])
	m.alerts = ret
	return len(m.alerts) > 0
}

func (m *Alerts) Len() int {
	return len(m.alerts)
}

// Iterate yields the alerts, newest last.
func (m *Alerts) Iterate(yield func(int, Alert) bool) {
	for i, a := range m.alerts {
		if !yield(i, a) {
			return
		}
	}
}
