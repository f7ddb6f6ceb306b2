package oto

import (
	"encoding/binary"
	"math"

	"github.com/vsariola/gamesound"
)

// bytesPerFrame is the size of one stereo float32 frame.
const bytesPerFrame = 8

// AudioBufferToFloat32LE writes the buffer into out as interleaved
// little-endian float32 samples. out must hold at least len(buf) frames.
// Returns the number of bytes written.
func AudioBufferToFloat32LE(buf gamesound.AudioBuffer, out []byte) int {
	for i, v := range buf {
		binary.LittleEndian.PutUint32(out[i*bytesPerFrame:], math.Float32bits(v[0]))
		binary.LittleEndian.PutUint32(out[i*bytesPerFrame+4:], math.Float32bits(v[1]))
	}
	return len(buf) * bytesPerFrame
}
