package sound

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/guitarlab/fretboard/internal/domain"
)

// Metronome sample files, looked up in the samples directory
const (
	DownbeatSample  = "Perc_MetronomeQuartz_hi.wav"
	SecondarySample = "Perc_MetronomeQuartz_lo.wav"
)

// RequiredSamples returns the sample paths inside dir, downbeat first
func RequiredSamples(dir string) []string {
	return []string{
		filepath.Join(dir, DownbeatSample),
		filepath.Join(dir, SecondarySample),
	}
}

// CheckAssets returns a *domain.MissingAssetError for the first required
// sample that does not exist in dir
func CheckAssets(dir string) error {
	for _, path := range RequiredSamples(dir) {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return &domain.MissingAssetError{Path: path}
			}
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
	}
	return nil
}
