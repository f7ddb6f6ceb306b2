package gamesound

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

type (
	riffHeader struct {
		ID     [4]byte
		Size   uint32
		Format [4]byte
	}

	fmtChunk struct {
		ID            [4]byte
		Size          uint32
		Format        uint16
		Channels      uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
	}

	chunkHeader struct {
		ID   [4]byte
		Size uint32
	}
)

const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// Wav encodes the buffer as a stereo WAV file. With pcm16 the samples are
// stored as clamped 16-bit integers, otherwise as 32-bit IEEE floats (with
// the extended fmt chunk and the fact chunk that float files require).
func (b AudioBuffer) Wav(pcm16 bool, sampleRate int) ([]byte, error) {
	payload, err := b.Raw(pcm16)
	if err != nil {
		return nil, fmt.Errorf("Wav failed: %w", err)
	}
	bytesPerSample := 4
	format := uint16(wavFormatFloat)
	if pcm16 {
		bytesPerSample, format = 2, wavFormatPCM
	}
	f := fmtChunk{
		ID:            [4]byte{'f', 'm', 't', ' '},
		Size:          16,
		Format:        format,
		Channels:      2,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * 2 * bytesPerSample),
		BlockAlign:    uint16(2 * bytesPerSample),
		BitsPerSample: uint16(8 * bytesPerSample),
	}
	headerLen := 44
	if !pcm16 {
		f.Size = 18
		headerLen = 58
	}
	var out bytes.Buffer
	out.Grow(headerLen + len(payload))
	binary.Write(&out, binary.LittleEndian, riffHeader{
		ID:     [4]byte{'R', 'I', 'F', 'F'},
		Size:   uint32(headerLen - 8 + len(payload)),
		Format: [4]byte{'W', 'A', 'V', 'E'},
	})
	binary.Write(&out, binary.LittleEndian, f)
	if !pcm16 {
		binary.Write(&out, binary.LittleEndian, uint16(0)) // cbSize
		binary.Write(&out, binary.LittleEndian, chunkHeader{ID: [4]byte{'f', 'a', 'c', 't'}, Size: 4})
		binary.Write(&out, binary.LittleEndian, uint32(len(b)))
	}
	binary.Write(&out, binary.LittleEndian, chunkHeader{ID: [4]byte{'d', 'a', 't', 'a'}, Size: uint32(len(payload))})
	out.Write(payload)
	return out.Bytes(), nil
}

// Raw returns the samples interleaved (L, R, L, R...) in little endian, either
// as 16-bit integers or 32-bit floats.
func (b AudioBuffer) Raw(pcm16 bool) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if pcm16 {
		ints := make([][2]int16, len(b))
		for i, v := range b {
			ints[i] = [2]int16{toInt16(v[0]), toInt16(v[1])}
		}
		err = binary.Write(&buf, binary.LittleEndian, ints)
	} else {
		err = binary.Write(&buf, binary.LittleEndian, b)
	}
	if err != nil {
		return nil, fmt.Errorf("Raw failed: %w", err)
	}
	return buf.Bytes(), nil
}

func toInt16(v float32) int16 {
	return int16(max(min(v*math.MaxInt16, math.MaxInt16), math.MinInt16))
}
