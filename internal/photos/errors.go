package photos

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrTooLarge          = errors.New("file too large")
	ErrCorruptOrEmpty    = errors.New("file empty or corrupt")
	ErrCancelled         = errors.New("upload cancelled")
	ErrInvalidAssetRef   = errors.New("invalid asset reference")
)

// EncodeError reports a decode/resize/encode failure for one variant.
// Any EncodeError aborts the whole upload: a photo with a missing variant
// breaks grid layouts downstream, so partial success is total failure.
type EncodeError struct {
	Variant string
	Err     error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode variant %q: %v", e.Variant, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// StorageError reports a backend put/delete failure. The message must stay
// user-actionable and never echo credentials.
type StorageError struct {
	Backend string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s storage: %v", e.Backend, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
