package photos

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
)

// deleteExtensions covers every extension a variant can have been encoded
// with. The deleter has no manifest, so it tries all of them.
var deleteExtensions = []string{"webp", "jpg", "jpeg", "png"}

// Deleter removes every variant of an asset given any one of its URLs or
// keys. Per-variant failures are logged and swallowed: an orphaned blob is
// an acceptable cost, a stuck delete is not.
type Deleter struct {
	backend StorageBackend
	plan    Plan
}

func NewDeleter(backend StorageBackend) *Deleter {
	return &Deleter{
		backend: backend,
		plan:    DefaultPlan(),
	}
}

// DeleteAll derives the {ownerId}/{fileId} prefix from the representative
// reference and deletes the full variant-name x extension cross-product.
// The asset may have been stored under either backend's plan and in any
// format, so being conservative beats guessing. Missing keys are fine.
func (d *Deleter) DeleteAll(ctx context.Context, representative string) error {
	ownerID, fileID, err := d.splitAssetRef(representative)
	if err != nil {
		return err
	}

	for _, spec := range d.plan {
		for _, ext := range deleteExtensions {
			key := assetKey(ownerID, fileID, spec.Name, ext)
			if err := d.backend.Delete(ctx, key); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("Failed to delete photo variant")
			}
		}
	}

	return nil
}

// splitAssetRef extracts {ownerId, fileId} from a variant URL or key. The
// last two path segments are always {ownerId} and
// {fileId}-{variant}.{ext}; the suffix is stripped against the known
// variant names and extensions.
func (d *Deleter) splitAssetRef(representative string) (ownerID, fileID string, err error) {
	p := representative
	if u, uerr := url.Parse(representative); uerr == nil && u.Path != "" {
		p = u.Path
	}
	p = strings.Trim(p, "/")

	segments := strings.Split(p, "/")
	if len(segments) < 2 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidAssetRef, representative)
	}

	ownerID = segments[len(segments)-2]
	base := segments[len(segments)-1]

	for _, spec := range d.plan {
		for _, ext := range deleteExtensions {
			suffix := fmt.Sprintf("-%s.%s", spec.Name, ext)
			if strings.HasSuffix(base, suffix) {
				return ownerID, strings.TrimSuffix(base, suffix), nil
			}
		}
	}

	// A bare {ownerId}/{fileId} prefix is accepted too.
	if !strings.Contains(base, ".") {
		return ownerID, base, nil
	}

	return "", "", fmt.Errorf("%w: %q does not match any known variant suffix", ErrInvalidAssetRef, representative)
}
