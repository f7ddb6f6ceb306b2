package gamesound

// Param is a continuously variable parameter that can either be set instantly
// or ramped linearly from its current value to a target. The length of a ramp
// is in arbitrary units; the audio engine advances params in sample frames and
// the scene advances them in seconds. Setting the value stops any ramp in
// progress; issuing a new ramp replaces the old one, starting from the value
// the param has at that moment.
type Param struct {
	value  float64
	from   float64
	target float64
	length float64
	pos    float64
}

// MakeParam returns a Param resting at value.
func MakeParam(value float64) Param {
	return Param{value: value}
}

func (p *Param) Value() float64 {
	return p.value
}

// Target returns the value the param is heading to, or the current value if
// it is not ramping.
func (p *Param) Target() float64 {
	if p.length == 0 {
		return p.value
	}
	return p.target
}

// Set sets the value instantly and stops the ramp.
func (p *Param) Set(value float64) {
	p.value = value
	p.length = 0
	p.pos = 0
}

// RampTo starts a linear ramp from the current value to target. A length <= 0
// sets the value instantly.
func (p *Param) RampTo(target, length float64) {
	if length <= 0 {
		p.Set(target)
		return
	}
	p.from = p.value
	p.target = target
	p.length = length
	p.pos = 0
}

func (p *Param) Ramping() bool {
	return p.length > 0
}

// Remaining returns how much of the ramp is still left, in the same units as
// the ramp length. Zero when not ramping.
func (p *Param) Remaining() float64 {
	if p.length == 0 {
		return 0
	}
	return p.length - p.pos
}

// Advance moves the ramp forward by delta units. It returns true if the ramp
// reached its target during this call.
func (p *Param) Advance(delta float64) (finished bool) {
	if p.length == 0 || delta <= 0 {
		return false
	}
	p.pos += delta
	if p.pos >= p.length {
		p.Set(p.target)
		return true
	}
	p.value = p.from + (p.target-p.from)*p.pos/p.length
	return false
}
