package audio

import (
	"encoding/binary"
	"time"

	"github.com/gopxl/beep"
)

// bytesPerFrame is 16-bit little-endian stereo
const bytesPerFrame = 4

// maxSoundLength caps rendering of streamers that never drain
const maxSoundLength = 5 * time.Second

// RenderPCM drains a streamer into interleaved 16-bit little-endian stereo
// bytes. At most maxSamples frames are rendered.
func RenderPCM(s beep.Streamer, maxSamples int) []byte {
	out := make([]byte, 0, 4096)
	buf := make([][2]float64, 512)

	for rendered := 0; rendered < maxSamples; {
		want := len(buf)
		if left := maxSamples - rendered; left < want {
			want = left
		}
		n, ok := s.Stream(buf[:want])
		for i := 0; i < n; i++ {
			out = appendFrame(out, buf[i])
		}
		rendered += n
		if !ok || n < want {
			break
		}
	}
	return out
}

// appendFrame clamps one stereo frame and appends it as two int16 values
func appendFrame(out []byte, frame [2]float64) []byte {
	var tmp [bytesPerFrame]byte
	for ch := 0; ch < 2; ch++ {
		v := frame[ch]
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		binary.LittleEndian.PutUint16(tmp[ch*2:], uint16(int16(v*32767)))
	}
	return append(out, tmp[:]...)
}

// RenderSound synthesizes a sound to PCM bytes using cfg's sample rate
func RenderSound(s Sound, cfg *AudioConfig) ([]byte, error) {
	st, err := CreateSound(s, cfg)
	if err != nil {
		return nil, err
	}
	rate := beep.SampleRate(cfg.SampleRate)
	return RenderPCM(st, rate.N(maxSoundLength)), nil
}
