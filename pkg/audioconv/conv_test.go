package audioconv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWAV(t *testing.T, path string, sampleRate, channels int, data []int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
}

func TestConvertFileToPCM16k_WAV(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name       string
		file       string
		sampleRate int
		channels   int
		frames     int
		value      int
		want       float32
	}{
		{name: "mono 16k", file: "mono.wav", sampleRate: 16000, channels: 1, frames: 1600, value: 16384, want: 0.5},
		{name: "stereo 16k downmix", file: "stereo.wav", sampleRate: 16000, channels: 2, frames: 1600, value: 8192, want: 0.25},
		{name: "no extension sniffed", file: "clip", sampleRate: 16000, channels: 1, frames: 800, value: -16384, want: -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]int, tt.frames*tt.channels)
			for i := range data {
				data[i] = tt.value
			}
			path := filepath.Join(dir, tt.file)
			writeWAV(t, path, tt.sampleRate, tt.channels, data)

			pcm, err := ConvertFileToPCM16k(context.Background(), path, Options{})
			require.NoError(t, err)
			require.Len(t, pcm, tt.frames)
			assert.InDelta(t, tt.want, pcm[tt.frames/2], 1e-4)
		})
	}
}

func TestConvertFileToPCM16k_Resamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "8k.wav")
	data := make([]int, 8000) // one second at 8 kHz
	writeWAV(t, path, 8000, 1, data)

	pcm, err := ConvertFileToPCM16k(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.InDelta(t, SampleRate, len(pcm), 64)
}

func TestConvertFileToPCM16k_MaxSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.wav")
	writeWAV(t, path, 16000, 1, make([]int, 16000))

	pcm, err := ConvertFileToPCM16k(context.Background(), path, Options{MaxSamples: 100})
	require.NoError(t, err)
	assert.Len(t, pcm, 100)
}

func TestConvertFileToPCM16k_Errors(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(unknown, []byte("hello world"), 0o644))

	_, err := ConvertFileToPCM16k(context.Background(), unknown, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ConvertFileToPCM16k(context.Background(), filepath.Join(dir, "missing.wav"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)

	corrupt := filepath.Join(dir, "corrupt.wav")
	require.NoError(t, os.WriteFile(corrupt, []byte("not really a wav"), 0o644))
	_, err = ConvertFileToPCM16k(context.Background(), corrupt, Options{})
	assert.Error(t, err)
}

func TestConvertFileToPCM16k_Canceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.wav")
	writeWAV(t, path, 16000, 1, make([]int, 160))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ConvertFileToPCM16k(ctx, path, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResample(t *testing.T) {
	in := make([]float32, 4800)
	for i := range in {
		in[i] = 0.5
	}

	out := resample(in, 48000, SampleRate)
	assert.InDelta(t, 1600, len(out), 16)
	assert.InDelta(t, 0.5, out[len(out)/2], 1e-3)

	same := resample(in, SampleRate, SampleRate)
	assert.Equal(t, in, same)
}

func TestDownmixInterleaved(t *testing.T) {
	got := downmixInterleaved([]float32{1, 0, 0.5, 0.5, -1, 1}, 2)
	assert.Equal(t, []float32{0.5, 0.5, 0}, got)
}
