package photos

import "context"

// StorageBackend is the persistence capability the pipeline writes through.
// Put returns the browser-accessible URL of the stored object and must treat
// contentType as authoritative metadata, never inferring it from the key.
// Delete is idempotent: removing a missing key is success.
type StorageBackend interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// ActivePlan narrows the configured plan to the variants this backend
	// persists. The filesystem fallback stores a reduced subset to bound
	// disk usage; the object store keeps the full plan.
	ActivePlan(plan Plan) Plan
}

type StorageKind string

const (
	StorageKindObject StorageKind = "object"
	StorageKindLocal  StorageKind = "local"
)

type StorageConfig struct {
	ObjectStoreAccountID     string `mapstructure:"objectStoreAccountId"`
	ObjectStoreAccessKeyID   string `mapstructure:"objectStoreAccessKeyId"`
	ObjectStoreSecretKey     string `mapstructure:"objectStoreSecretKey"`
	ObjectStoreBucket        string `mapstructure:"objectStoreBucket"`
	ObjectStorePublicURLBase string `mapstructure:"objectStorePublicUrlBase"`
	LocalStorageRootDir      string `mapstructure:"localStorageRootDir"`
}

// Kind decides the backend once, up front. Absent object-store credentials
// are not an error; they select the filesystem fallback.
func (c *StorageConfig) Kind() StorageKind {
	if c.ObjectStoreAccountID != "" && c.ObjectStoreAccessKeyID != "" && c.ObjectStoreSecretKey != "" {
		return StorageKindObject
	}
	return StorageKindLocal
}

func NewBackend(config *StorageConfig) (StorageBackend, error) {
	switch config.Kind() {
	case StorageKindObject:
		return NewObjectStorage(config)
	default:
		return NewLocalStorage(config)
	}
}
