package scene

import (
	"time"
)

type (
	// Command is a scheduled step. It carries only its own data; everything
	// else is looked up from the scene when it runs.
	Command interface {
		Execute(s *Scene)
	}

	// EffectChannel is what the effect commands need from a channel.
	// *engine.Sampler implements it.
	EffectChannel interface {
		Play(volume float64)
		Pan() float64
		PanTo(pan float64, d time.Duration)
		SetVolume(volume float64)
		VolumeTo(volume float64, d time.Duration)
		PitchBendTo(bend float64, d time.Duration)
	}

	// ChannelCommand is a Command acting on the effect channel.
	ChannelCommand interface {
		Command
		Apply(ch EffectChannel)
	}

	PlayCmd struct {
		Volume float64
	}

	PanToCmd struct {
		Pan      float64
		Duration time.Duration
	}

	SetVolumeCmd struct {
		Volume float64
	}

	VolumeToCmd struct {
		Volume   float64
		Duration time.Duration
	}

	PitchBendToCmd struct {
		Bend     float64
		Duration time.Duration
	}

	// ShowTipCmd pops up an informational alert.
	ShowTipCmd struct {
		Message  string
		Duration time.Duration
	}
)

func (c PlayCmd) Apply(ch EffectChannel)        { ch.Play(c.Volume) }
func (c PanToCmd) Apply(ch EffectChannel)       { ch.PanTo(c.Pan, c.Duration) }
func (c SetVolumeCmd) Apply(ch EffectChannel)   { ch.SetVolume(c.Volume) }
func (c VolumeToCmd) Apply(ch EffectChannel)    { ch.VolumeTo(c.Volume, c.Duration) }
func (c PitchBendToCmd) Apply(ch EffectChannel) { ch.PitchBendTo(c.Bend, c.Duration) }

func (c PlayCmd) Execute(s *Scene)        { s.applyToEffect(c) }
func (c PanToCmd) Execute(s *Scene)       { s.applyToEffect(c) }
func (c SetVolumeCmd) Execute(s *Scene)   { s.applyToEffect(c) }
func (c VolumeToCmd) Execute(s *Scene)    { s.applyToEffect(c) }
func (c PitchBendToCmd) Execute(s *Scene) { s.applyToEffect(c) }

func (c ShowTipCmd) Execute(s *Scene) {
	s.alerts.AddAlert(Alert{Name: "Tip", Priority: Info, Message: c.Message, Duration: c.Duration})
}
