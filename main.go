package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/motorlot/motorlot_media/internal"
	"github.com/motorlot/motorlot_media/internal/photos"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := internal.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
		return
	}

	backend, err := photos.NewBackend(&config.Photos.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing storage backend")
		return
	}

	if len(os.Args) < 2 {
		usage()
		return
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "upload":
		if len(os.Args) != 4 {
			usage()
			return
		}
		runUpload(ctx, config, backend, os.Args[2], os.Args[3])
	case "delete":
		if len(os.Args) != 3 {
			usage()
			return
		}
		runDelete(ctx, backend, os.Args[2])
	default:
		usage()
	}
}

func runUpload(ctx context.Context, config *internal.Config, backend photos.StorageBackend, ownerID, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Error reading photo file")
		return
	}

	validator := photos.NewValidator(&config.Photos)
	pipeline := photos.NewPipeline(validator, backend)

	set, err := pipeline.Upload(ctx, &photos.UploadCandidate{
		Data:     data,
		Filename: filepath.Base(path),
		Size:     int64(len(data)),
	}, ownerID)
	if err != nil {
		log.Fatal().Err(err).Str("owner", ownerID).Msg("Upload failed")
		return
	}

	out, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Error encoding result")
		return
	}
	fmt.Println(string(out))
}

func runDelete(ctx context.Context, backend photos.StorageBackend, representative string) {
	deleter := photos.NewDeleter(backend)
	if err := deleter.DeleteAll(ctx, representative); err != nil {
		log.Fatal().Err(err).Str("ref", representative).Msg("Delete failed")
		return
	}
	log.Info().Str("ref", representative).Msg("Asset variants deleted")
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  motorlot_media upload <ownerId> <file>")
	fmt.Fprintln(os.Stderr, "  motorlot_media delete <url-or-key>")
	os.Exit(2)
}
