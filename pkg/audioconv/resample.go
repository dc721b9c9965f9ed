package audioconv

import (
	"math"

	"github.com/faiface/beep"
)

const resampleQuality = 4

// monoStreamer feeds mono PCM to beep, duplicated onto both channels.
type monoStreamer struct {
	pcm []float32
	pos int
}

func (m *monoStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if m.pos >= len(m.pcm) {
		return 0, false
	}
	for n < len(samples) && m.pos < len(m.pcm) {
		v := float64(m.pcm[m.pos])
		samples[n][0] = v
		samples[n][1] = v
		n++
		m.pos++
	}
	return n, true
}

func (m *monoStreamer) Err() error { return nil }

func resample(in []float32, inSR, outSR int) []float32 {
	if inSR == outSR || len(in) == 0 {
		return in
	}

	r := beep.Resample(resampleQuality, beep.SampleRate(inSR), beep.SampleRate(outSR), &monoStreamer{pcm: in})

	outN := int(math.Ceil(float64(len(in)) * float64(outSR) / float64(inSR)))
	out := make([]float32, 0, outN)
	buf := make([][2]float64, 512)
	for {
		n, ok := r.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, float32(clamp(buf[i][0], -1.0, 1.0)))
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}
