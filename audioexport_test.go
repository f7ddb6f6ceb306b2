package gamesound_test

import (
	"encoding/binary"
	"testing"

	"github.com/vsariola/gamesound"
)

func TestWavHeader(t *testing.T) {
	buf := gamesound.AudioBuffer{{0, 0}, {0.5, -0.5}, {1, -1}}
	for _, pcm16 := range []bool{true, false} {
		data, err := buf.Wav(pcm16, 22050)
		if err != nil {
			t.Fatalf("Wav(%v) failed: %v", pcm16, err)
		}
		if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
			t.Fatalf("Wav(%v): missing RIFF/WAVE magic", pcm16)
		}
		if sr := binary.LittleEndian.Uint32(data[24:28]); sr != 22050 {
			t.Errorf("Wav(%v): sample rate %d, want 22050", pcm16, sr)
		}
		if ch := binary.LittleEndian.Uint16(data[22:24]); ch != 2 {
			t.Errorf("Wav(%v): %d channels, want 2", pcm16, ch)
		}
		headerLen, bytesPerSample := 58, 4
		if pcm16 {
			headerLen, bytesPerSample = 44, 2
		}
		if got, want := len(data), headerLen+len(buf)*2*bytesPerSample; got != want {
			t.Errorf("Wav(%v): file length %d, want %d", pcm16, got, want)
		}
		if size := binary.LittleEndian.Uint32(data[headerLen-4 : headerLen]); int(size) != len(buf)*2*bytesPerSample {
			t.Errorf("Wav(%v): data chunk size %d, want %d", pcm16, size, len(buf)*2*bytesPerSample)
		}
	}
}

func TestRawPCM16(t *testing.T) {
	raw, err := gamesound.AudioBuffer{{1, -1}}.Raw(true)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) != 4 {
		t.Fatalf("got %d bytes, want 4", len(raw))
	}
	if l := int16(binary.LittleEndian.Uint16(raw[0:2])); l != 32767 {
		t.Errorf("left: got %d, want 32767", l)
	}
	if r := int16(binary.LittleEndian.Uint16(raw[2:4])); r != -32767 {
		t.Errorf("right: got %d, want -32767", r)
	}
}
