package domain

import "errors"

var (
	ErrAssetMissing   = errors.New("required audio asset not found")
	ErrInvalidString  = errors.New("string must be between 1 and 6")
	ErrInvalidTempo   = errors.New("tempo must be a positive number of beats per minute")
	ErrPresetConflict = errors.New("--preset must be used alone")
	ErrSessionExists  = errors.New("practice session already exists")
	ErrUnknownNote    = errors.New("unknown note")
)

// MissingAssetError reports a required file that does not exist
type MissingAssetError struct {
	Path string
}

func (e *MissingAssetError) Error() string {
	return "File not found: " + e.Path
}

func (e *MissingAssetError) Unwrap() error {
	return ErrAssetMissing
}
