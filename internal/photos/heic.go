package photos

import "context"

// HEICConverter turns HEIC/HEIF source bytes into a JPEG byte stream the
// standard encoder can work with. The pipeline consults it for .heic/.heif
// uploads before any variant work; without one configured those uploads are
// rejected with a remediation hint rather than failing opaquely mid-encode.
type HEICConverter interface {
	Convert(ctx context.Context, src []byte) ([]byte, error)
}

func isHEIC(ext string) bool {
	return ext == "heic" || ext == "heif"
}
