package sound

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guitarlab/fretboard/internal/domain"
	"github.com/guitarlab/fretboard/internal/ports"
)

// writeWAV writes a mono 16-bit PCM file with n samples of a short ramp
func writeWAV(t *testing.T, path string, sampleRate uint32, n int) {
	t.Helper()

	var data bytes.Buffer
	for i := 0; i < n; i++ {
		require.NoError(t, binary.Write(&data, binary.LittleEndian, int16(i*100)))
	}

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(36+data.Len())))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	for _, v := range []any{
		uint32(16),     // fmt chunk size
		uint16(1),      // PCM
		uint16(1),      // channels
		sampleRate,     // sample rate
		sampleRate * 2, // byte rate
		uint16(2),      // block align
		uint16(16),     // bits per sample
	} {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}
	buf.WriteString("data")
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(data.Len())))
	buf.Write(data.Bytes())

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func writeSamples(t *testing.T, dir string) {
	t.Helper()
	writeWAV(t, filepath.Join(dir, DownbeatSample), 44100, 441)
	writeWAV(t, filepath.Join(dir, SecondarySample), 44100, 220)
}

func noSpeaker(beep.SampleRate, int) error {
	return errors.New("no audio device")
}

func TestCheckAssets(t *testing.T) {
	dir := t.TempDir()

	err := CheckAssets(dir)
	require.ErrorIs(t, err, domain.ErrAssetMissing)
	assert.Equal(t, "File not found: "+filepath.Join(dir, DownbeatSample), err.Error())

	require.NoError(t, os.WriteFile(filepath.Join(dir, DownbeatSample), nil, 0644))
	err = CheckAssets(dir)
	require.ErrorIs(t, err, domain.ErrAssetMissing)
	assert.Contains(t, err.Error(), SecondarySample)

	require.NoError(t, os.WriteFile(filepath.Join(dir, SecondarySample), nil, 0644))
	assert.NoError(t, CheckAssets(dir))
}

func TestRequiredSamples(t *testing.T) {
	assert.Equal(t, []string{
		filepath.Join("clicks", DownbeatSample),
		filepath.Join("clicks", SecondarySample),
	}, RequiredSamples("clicks"))
}

func TestLoadSample_NativeRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "click.wav")
	writeWAV(t, path, 44100, 300)

	buffer, err := loadSample(path)

	require.NoError(t, err)
	assert.Equal(t, 300, buffer.Len())
	assert.Equal(t, outputSampleRate, buffer.Format().SampleRate)
}

func TestLoadSample_Resamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "click.wav")
	writeWAV(t, path, 22050, 300)

	buffer, err := loadSample(path)

	require.NoError(t, err)
	assert.InDelta(t, 600, buffer.Len(), 30)
	assert.Equal(t, outputSampleRate, buffer.Format().SampleRate)
}

func TestLoadSample_NotAWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "click.wav")
	require.NoError(t, os.WriteFile(path, []byte("definitely not audio"), 0644))

	_, err := loadSample(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestNewPlayer_MissingAsset(t *testing.T) {
	_, err := newPlayer(t.TempDir(), noSpeaker)

	assert.ErrorIs(t, err, domain.ErrAssetMissing)
}

func TestNewPlayer_MutedWithoutAudioDevice(t *testing.T) {
	dir := t.TempDir()
	writeSamples(t, dir)

	p, err := newPlayer(dir, noSpeaker)
	require.NoError(t, err)

	assert.False(t, p.live)
	assert.Len(t, p.samples, 2)
	p.Play(ports.ClickDownbeat)
	assert.NoError(t, p.PlayAndWait(context.Background(), ports.ClickSecondary))
	p.Close()
	p.Close()
}

func TestMuted(t *testing.T) {
	p := Muted()

	p.Play(ports.ClickDownbeat)
	assert.NoError(t, p.PlayAndWait(context.Background(), ports.ClickDownbeat))
	assert.NotPanics(t, p.Close)
}
