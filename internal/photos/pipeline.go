package photos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Pipeline turns one validated upload into the full set of stored variants.
// It is safe for concurrent use across uploads: every upload mints its own
// fileId, so no two uploads ever touch the same key.
type Pipeline struct {
	validator *Validator
	backend   StorageBackend
	plan      Plan
	heic      HEICConverter
}

func NewPipeline(validator *Validator, backend StorageBackend) *Pipeline {
	return &Pipeline{
		validator: validator,
		backend:   backend,
		plan:      DefaultPlan(),
	}
}

// UseHEICConverter enables the HEIC/HEIF conversion stage ahead of the
// variant encoder.
func (p *Pipeline) UseHEICConverter(converter HEICConverter) {
	p.heic = converter
}

// Upload validates the candidate, encodes and stores every variant of the
// backend's active plan concurrently, and returns the URL map. The first
// failure cancels the remaining variant work; variants already stored for
// the failed attempt are deleted best-effort so no partial asset set ever
// survives.
func (p *Pipeline) Upload(ctx context.Context, candidate *UploadCandidate, ownerID string) (*StoredAssetSet, error) {
	if err := p.validator.Validate(candidate); err != nil {
		return nil, err
	}

	src := candidate.Data
	srcExt := fileExt(candidate.Filename)
	if isHEIC(srcExt) {
		if p.heic == nil {
			return nil, fmt.Errorf("%w: HEIC photos cannot be converted on this server yet; export the photo as JPEG and upload that instead", ErrUnsupportedFormat)
		}
		converted, err := p.heic.Convert(ctx, src)
		if err != nil {
			return nil, &EncodeError{Variant: "source", Err: fmt.Errorf("heic conversion: %w", err)}
		}
		src = converted
		srcExt = "jpg"
	}

	fileID := mintFileID()
	activePlan := p.backend.ActivePlan(p.plan)

	results := make([]*storedVariant, len(activePlan))

	g, gctx := errgroup.WithContext(ctx)
	for i, spec := range activePlan {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			variant, err := EncodeVariant(src, srcExt, spec)
			if err != nil {
				return err
			}
			key := assetKey(ownerID, fileID, variant.Name, variant.Ext)
			url, err := p.backend.Put(gctx, key, variant.Bytes, variant.ContentType)
			if err != nil {
				return err
			}
			results[i] = &storedVariant{key: key, url: url}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.cleanupAttempt(results)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
		}
		return nil, err
	}

	urls := make(map[string]string, len(activePlan))
	for i, spec := range activePlan {
		urls[spec.Name] = results[i].url
	}

	primary := urls[PrimaryVariant]
	if primary == "" {
		primary = results[0].url
	}

	return &StoredAssetSet{URLs: urls, PrimaryURL: primary}, nil
}

type storedVariant struct {
	key string
	url string
}

// cleanupAttempt removes whatever a failed upload already stored. It runs on
// a fresh context because the parent may already be cancelled.
func (p *Pipeline) cleanupAttempt(results []*storedVariant) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, stored := range results {
		if stored == nil {
			continue
		}
		if err := p.backend.Delete(ctx, stored.key); err != nil {
			log.Warn().Err(err).Str("key", stored.key).Msg("Failed to clean up variant from aborted upload")
		}
	}
}

// assetKey builds the deterministic path shared by all variants of one
// upload: {ownerId}/{fileId}-{variant}.{ext}.
func assetKey(ownerID, fileID, variant, ext string) string {
	return fmt.Sprintf("%s/%s-%s.%s", ownerID, fileID, variant, ext)
}

// mintFileID produces the collision-resistant identifier all variants of one
// upload share. Hyphens are stripped so the -{variant}.{ext} suffix stays
// the only hyphenated part of the key's base name that matters for parsing.
func mintFileID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
