package photos

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// localURLPrefix is the path the serving layer mounts the media root under.
const localURLPrefix = "/media"

// LocalStorage is the fallback backend used when no object-store credentials
// are configured. It mirrors the key scheme under a root directory and
// returns relative URL paths.
type LocalStorage struct {
	rootDir string
}

func NewLocalStorage(config *StorageConfig) (*LocalStorage, error) {
	rootDir := config.LocalStorageRootDir
	if rootDir == "" {
		rootDir = "files/media"
	}

	if err := os.MkdirAll(rootDir, 0755); err != nil {
		return nil, &StorageError{Backend: "local", Err: fmt.Errorf("create media root: %w", err)}
	}

	return &LocalStorage{rootDir: rootDir}, nil
}

func (s *LocalStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	fullPath := filepath.Join(s.rootDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", &StorageError{Backend: "local", Err: err}
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		os.Remove(fullPath)
		return "", &StorageError{Backend: "local", Err: err}
	}

	return localURLPrefix + "/" + key, nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	fullPath := filepath.Join(s.rootDir, filepath.FromSlash(key))

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return &StorageError{Backend: "local", Err: err}
	}
	return nil
}

func (s *LocalStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.rootDir, filepath.FromSlash(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &StorageError{Backend: "local", Err: err}
	}
	return true, nil
}

// ActivePlan sheds everything but the reduced subset so the fallback path
// cannot fill the disk with full-size derivatives.
func (s *LocalStorage) ActivePlan(plan Plan) Plan {
	return plan.Reduced()
}
