// Package harness provides utilities for integration testing the fretboard CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - FRETBOARD_HOME: Isolated per test (temp directory)
//   - FRETBOARD_DEBUG: Disabled to reduce noise
//
// Every command runs in its own temp working directory, where the drill
// looks for its metronome samples.
package harness
