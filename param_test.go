package gamesound_test

import (
	"math"
	"testing"

	"github.com/vsariola/gamesound"
)

func TestParamRamp(t *testing.T) {
	p := gamesound.MakeParam(0)
	p.RampTo(1, 100)
	if !p.Ramping() {
		t.Fatal("param should be ramping after RampTo")
	}
	p.Advance(25)
	if v := p.Value(); math.Abs(v-0.25) > 1e-12 {
		t.Errorf("value after quarter of the ramp: got %v, want 0.25", v)
	}
	if r := p.Remaining(); r != 75 {
		t.Errorf("remaining: got %v, want 75", r)
	}
	if finished := p.Advance(75); !finished {
		t.Error("Advance should report the ramp finishing")
	}
	if v := p.Value(); v != 1 {
		t.Errorf("value at end of ramp: got %v, want exactly 1", v)
	}
	if p.Ramping() {
		t.Error("param should not be ramping after reaching the target")
	}
}

func TestParamOvershootClampsToTarget(t *testing.T) {
	p := gamesound.MakeParam(-1)
	p.RampTo(1, 10)
	p.Advance(1000)
	if v := p.Value(); v != 1 {
		t.Errorf("got %v, want 1", v)
	}
}

func TestParamSetStopsRamp(t *testing.T) {
	p := gamesound.MakeParam(0)
	p.RampTo(1, 10)
	p.Advance(5)
	p.Set(0.2)
	if p.Ramping() {
		t.Fatal("Set should stop the ramp")
	}
	p.Advance(100)
	if v := p.Value(); v != 0.2 {
		t.Errorf("got %v, want 0.2", v)
	}
}

func TestParamNewRampStartsFromCurrentValue(t *testing.T) {
	p := gamesound.MakeParam(0)
	p.RampTo(1, 10)
	p.Advance(5)
	p.RampTo(0, 5)
	if tgt := p.Target(); tgt != 0 {
		t.Errorf("target: got %v, want 0", tgt)
	}
	p.Advance(1)
	if v := p.Value(); math.Abs(v-0.4) > 1e-12 {
		t.Errorf("got %v, want 0.4", v)
	}
}

func TestParamZeroLengthRampIsInstant(t *testing.T) {
	p := gamesound.MakeParam(0.5)
	p.RampTo(0, 0)
	if p.Ramping() || p.Value() != 0 {
		t.Errorf("zero length ramp should set instantly, got value %v ramping %v", p.Value(), p.Ramping())
	}
}
