package harness

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Metronome sample names the drill looks for in its working directory
const (
	DownbeatSample  = "Perc_MetronomeQuartz_hi.wav"
	SecondarySample = "Perc_MetronomeQuartz_lo.wav"
)

// TestEnvironment provides an isolated test environment with its own
// FRETBOARD_HOME and working directory.
type TestEnvironment struct {
	FretboardHome string
	WorkDir       string
	extraEnv      map[string]string
	tb            testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp FRETBOARD_HOME.
// The temp directories are automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		FretboardHome: tb.TempDir(),
		WorkDir:       tb.TempDir(),
		extraEnv:      make(map[string]string),
		tb:            tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out FRETBOARD_* variables and sets:
//   - FRETBOARD_HOME to the temp directory
//   - FRETBOARD_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	overrideKeys := make(map[string]bool)
	overrideKeys["FRETBOARD_HOME"] = true
	overrideKeys["FRETBOARD_DEBUG"] = true
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "FRETBOARD_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"FRETBOARD_HOME="+e.FretboardHome,
		"FRETBOARD_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the practice history database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.FretboardHome, "history.db")
}

// SettingsPath returns the path to the settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.FretboardHome, "settings.json")
}

// WriteSettings writes raw JSON to the settings file.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteSamples puts short but valid metronome WAV files in the working directory.
func (e *TestEnvironment) WriteSamples() {
	e.tb.Helper()
	for _, name := range []string{DownbeatSample, SecondarySample} {
		if err := os.WriteFile(filepath.Join(e.WorkDir, name), silentWAV(441), 0644); err != nil {
			e.tb.Fatalf("Failed to write sample %s: %v", name, err)
		}
	}
}

// silentWAV encodes n samples of mono 16-bit PCM silence at 44.1kHz
func silentWAV(n int) []byte {
	const sampleRate = 44100
	dataLen := uint32(n * 2)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVEfmt ")
	for _, v := range []any{
		uint32(16),
		uint16(1),
		uint16(1),
		uint32(sampleRate),
		uint32(sampleRate * 2),
		uint16(2),
		uint16(16),
	} {
		_ = binary.Write(&buf, binary.LittleEndian, v)
	}
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataLen)
	buf.Write(make([]byte, dataLen))
	return buf.Bytes()
}
