package photos

const (
	defaultMaxUploadBytes = 20 << 20
	defaultMinUploadBytes = 100
)

var defaultAllowedExtensions = []string{"jpg", "jpeg", "png", "webp", "heic", "heif"}

// Config holds the pipeline settings read from the photos section of the
// application config.
type Config struct {
	MaxUploadBytes    int64         `mapstructure:"maxUploadBytes"`
	MinUploadBytes    int64         `mapstructure:"minUploadBytes"`
	AllowedExtensions []string      `mapstructure:"allowedExtensions"`
	Storage           StorageConfig `mapstructure:"storage"`
}
