package photos

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// Validator accepts or rejects an upload before any encoding work happens.
// It is a pure function of the candidate plus static configuration.
type Validator struct {
	allowedExts map[string]bool
	minBytes    int64
	maxBytes    int64
}

func NewValidator(config *Config) *Validator {
	maxBytes := config.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxUploadBytes
	}
	minBytes := config.MinUploadBytes
	if minBytes <= 0 {
		minBytes = defaultMinUploadBytes
	}
	exts := config.AllowedExtensions
	if len(exts) == 0 {
		exts = defaultAllowedExtensions
	}

	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(ext)] = true
	}

	return &Validator{
		allowedExts: allowed,
		minBytes:    minBytes,
		maxBytes:    maxBytes,
	}
}

// Validate checks the candidate's extension, size and image header, in that
// order, short-circuiting on the first failure.
func (v *Validator) Validate(candidate *UploadCandidate) error {
	ext := fileExt(candidate.Filename)
	if !v.allowedExts[ext] {
		return fmt.Errorf("%w: %q is not a supported photo type; if you selected a Live Photo, choose the still photo instead of the video clip", ErrUnsupportedFormat, candidate.Filename)
	}

	size := int64(len(candidate.Data))
	if size <= v.minBytes {
		return fmt.Errorf("%w: got %d bytes", ErrCorruptOrEmpty, size)
	}
	if size > v.maxBytes {
		return fmt.Errorf("%w: got %d bytes, limit is %d", ErrTooLarge, size, v.maxBytes)
	}

	// Cheap header probe so undecodable bytes fail here with a clear message
	// instead of deep inside the encoder. The standard registry cannot parse
	// HEIC/HEIF headers, so those pass through to the conversion stage.
	if !isHEIC(ext) {
		if _, _, err := image.DecodeConfig(bytes.NewReader(candidate.Data)); err != nil {
			return fmt.Errorf("%w: file could not be read as an image", ErrUnsupportedFormat)
		}
	}

	return nil
}

func fileExt(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}
