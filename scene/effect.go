package scene

import "time"

// Scheduled is a channel command to run Delay after the trigger.
type Scheduled struct {
	Delay time.Duration
	Cmd   ChannelCommand
}

// panSweepThreshold decides where the pan sweep starts from: a channel that is
// already panned (nearly) hard left sweeps straight to the right.
const panSweepThreshold = -0.9

// EffectSequence returns the automation played when the effect is triggered,
// given the current pan of the effect channel and the volume to play at. The
// effect fades in from silence while sweeping from left to right with a
// slight pitch rise, then drifts back towards the center.
func EffectSequence(pan, volume float64) []Scheduled {
	seq := []Scheduled{{0, PlayCmd{Volume: volume}}}
	if pan > panSweepThreshold {
		seq = append(seq,
			Scheduled{0, PanToCmd{Pan: -1, Duration: 250 * time.Millisecond}},
			Scheduled{250 * time.Millisecond, PanToCmd{Pan: 1, Duration: 750 * time.Millisecond}},
		)
	} else {
		seq = append(seq, Scheduled{0, PanToCmd{Pan: 1, Duration: time.Second}})
	}
	return append(seq,
		Scheduled{0, SetVolumeCmd{Volume: 0}},
		Scheduled{0, VolumeToCmd{Volume: 1, Duration: 1500 * time.Millisecond}},
		Scheduled{0, PitchBendToCmd{Bend: 1.1, Duration: time.Second}},
		Scheduled{time.Second, PitchBendToCmd{Bend: 1, Duration: 250 * time.Millisecond}},
		Scheduled{time.Second, PanToCmd{Pan: -0.2, Duration: 2 * time.Second}},
	)
}
