package model

import "errors"

// Error kinds. Wrap them with fmt.Errorf("%w: ...") and test with errors.Is.
var (
	ErrInput       = errors.New("invalid input")
	ErrFontLoad    = errors.New("font load failed")
	ErrImageDecode = errors.New("image decode failed")
	ErrCommitSink  = errors.New("git command failed")
)
