package photos

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageConfigKind_ShouldSelectLocalWithoutCredentials(t *testing.T) {
	// given
	config := &StorageConfig{LocalStorageRootDir: t.TempDir()}

	// when
	kind := config.Kind()

	// then
	assert.Equal(t, StorageKindLocal, kind)
}

func TestStorageConfigKind_ShouldSelectObjectWithFullCredentials(t *testing.T) {
	// given
	config := &StorageConfig{
		ObjectStoreAccountID:   "account-id",
		ObjectStoreAccessKeyID: strings.Repeat("a", 32),
		ObjectStoreSecretKey:   strings.Repeat("b", 64),
		ObjectStoreBucket:      "vehicle-photos",
	}

	// when
	kind := config.Kind()

	// then
	assert.Equal(t, StorageKindObject, kind)
}

func TestStorageConfigKind_ShouldSelectLocalWithPartialCredentials(t *testing.T) {
	// given - secret missing
	config := &StorageConfig{
		ObjectStoreAccountID:   "account-id",
		ObjectStoreAccessKeyID: strings.Repeat("a", 32),
	}

	// when
	kind := config.Kind()

	// then
	assert.Equal(t, StorageKindLocal, kind)
}

func TestNewBackend_ShouldReturnLocalStorageWithoutCredentials(t *testing.T) {
	// given
	config := &StorageConfig{LocalStorageRootDir: t.TempDir()}

	// when
	backend, err := NewBackend(config)

	// then
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, backend)
}

func TestNewObjectStorage_ShouldRejectAccessKeyWithIncorrectLength(t *testing.T) {
	// given
	config := &StorageConfig{
		ObjectStoreAccountID:   "account-id",
		ObjectStoreAccessKeyID: "too-short",
		ObjectStoreSecretKey:   strings.Repeat("b", 64),
		ObjectStoreBucket:      "vehicle-photos",
	}

	// when
	_, err := NewObjectStorage(config)

	// then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access key has incorrect length")
	assert.NotContains(t, err.Error(), "too-short")
}

func TestNewObjectStorage_ShouldRejectSecretKeyWithIncorrectLength(t *testing.T) {
	// given
	config := &StorageConfig{
		ObjectStoreAccountID:   "account-id",
		ObjectStoreAccessKeyID: strings.Repeat("a", 32),
		ObjectStoreSecretKey:   "short",
		ObjectStoreBucket:      "vehicle-photos",
	}

	// when
	_, err := NewObjectStorage(config)

	// then
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret key has incorrect length")
	assert.NotContains(t, err.Error(), "short")
}
