package engine

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// ErrUnsupportedFormat is returned by LoadClip when the file extension does not
// match any of the known decoders.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// resampleQuality is passed to beep.Resample when an asset does not match the
// engine sample rate.
const resampleQuality = 4

// Clip is a fully decoded audio asset, resampled to the engine sample rate and
// kept in memory. Many channels and voices can stream the same clip at once.
type Clip struct {
	Name   string
	buffer *beep.Buffer
}

// LoadClip opens name.ext from fsys, decodes it according to the extension and
// stores it in memory at the sample rate sr.
func LoadClip(fsys fs.FS, name, ext string, sr beep.SampleRate) (*Clip, error) {
	ext = normalizeExt(ext)
	filename := name + "." + ext
	f, err := fsys.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", filename, err)
	}
	defer f.Close()
	streamer, format, err := decode(f, ext)
	if err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", filename, err)
	}
	defer streamer.Close()
	var s beep.Streamer = streamer
	if format.SampleRate != sr {
		s = beep.Resample(resampleQuality, format.SampleRate, sr, s)
	}
	buffer := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buffer.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("error while decoding %s: %w", filename, err)
	}
	return &Clip{Name: name, buffer: buffer}, nil
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func decode(f io.ReadCloser, ext string) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext {
	case "wav", "wave":
		return wav.Decode(f)
	case "ogg", "oga":
		return vorbis.Decode(f)
	case "mp3":
		return mp3.Decode(f)
	case "flac":
		return flac.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("%w: .%s", ErrUnsupportedFormat, ext)
}

// Len returns the length of the clip in sample frames.
func (c *Clip) Len() int {
	return c.buffer.Len()
}

func (c *Clip) SampleRate() beep.SampleRate {
	return c.buffer.Format().SampleRate
}

func (c *Clip) Duration() time.Duration {
	return c.SampleRate().D(c.buffer.Len())
}

// Streamer returns a new independent streamer over the whole clip.
func (c *Clip) Streamer() beep.StreamSeeker {
	return c.buffer.Streamer(0, c.buffer.Len())
}
