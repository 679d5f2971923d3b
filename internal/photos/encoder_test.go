package photos

import (
	"bytes"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeVariant_ShouldCapWidthOnWidthOnlySpec(t *testing.T) {
	// given
	src := makeJPEG(t, 3000, 2000)
	spec := VariantSpec{Name: "large", MaxWidth: 1920, Quality: 82, Format: FormatWebP}

	// when
	variant, err := EncodeVariant(src, "jpg", spec)

	// then
	require.NoError(t, err)
	assert.Equal(t, "image/webp", variant.ContentType)
	assert.Equal(t, "webp", variant.Ext)

	decoded := decodeWebP(t, variant.Bytes)
	assert.Equal(t, 1920, decoded.Bounds().Dx())
	assert.Equal(t, 1280, decoded.Bounds().Dy())
}

func TestEncodeVariant_ShouldFitInsideBoxSpec(t *testing.T) {
	// given
	src := makeJPEG(t, 3000, 2000)
	spec := VariantSpec{Name: "thumbnail", MaxWidth: 300, MaxHeight: 300, Quality: 80, Format: FormatWebP}

	// when
	variant, err := EncodeVariant(src, "jpg", spec)

	// then
	require.NoError(t, err)
	decoded := decodeWebP(t, variant.Bytes)
	assert.LessOrEqual(t, decoded.Bounds().Dx(), 300)
	assert.LessOrEqual(t, decoded.Bounds().Dy(), 300)
}

func TestEncodeVariant_ShouldNeverUpscaleSmallSource(t *testing.T) {
	// given - a source well below the medium cap
	src := makeJPEG(t, 100, 80)
	spec := VariantSpec{Name: "medium", MaxWidth: 1280, Quality: 80, Format: FormatWebP}

	// when
	variant, err := EncodeVariant(src, "jpg", spec)

	// then
	require.NoError(t, err)
	decoded := decodeWebP(t, variant.Bytes)
	assert.Equal(t, 100, decoded.Bounds().Dx())
	assert.Equal(t, 80, decoded.Bounds().Dy())
}

func TestEncodeVariant_ShouldKeepJPEGForKeepOriginalPolicy(t *testing.T) {
	// given
	src := makeJPEG(t, 3000, 2000)
	spec := VariantSpec{Name: "original", Quality: 90, Format: FormatKeepOriginal}

	// when
	variant, err := EncodeVariant(src, "jpg", spec)

	// then
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", variant.ContentType)
	assert.Equal(t, "jpg", variant.Ext)

	decoded, err := imaging.Decode(bytes.NewReader(variant.Bytes))
	require.NoError(t, err)
	srcRatio := 3000.0 / 2000.0
	outRatio := float64(decoded.Bounds().Dx()) / float64(decoded.Bounds().Dy())
	assert.InDelta(t, srcRatio, outRatio, 0.01)
}

func TestEncodeVariant_ShouldKeepPNGForKeepOriginalPolicy(t *testing.T) {
	// given
	src := makePNG(t, 640, 480)
	spec := VariantSpec{Name: "original", Quality: 90, Format: FormatKeepOriginal}

	// when
	variant, err := EncodeVariant(src, "png", spec)

	// then
	require.NoError(t, err)
	assert.Equal(t, "image/png", variant.ContentType)
	assert.Equal(t, "png", variant.Ext)
}

func TestEncodeVariant_ShouldFallBackToWebPForKeepOriginalWebPSource(t *testing.T) {
	// given - a webp source first turned into webp bytes via the encoder
	seed, err := EncodeVariant(makeJPEG(t, 400, 300), "jpg", VariantSpec{Name: "seed", MaxWidth: 400, Quality: 90, Format: FormatWebP})
	require.NoError(t, err)
	spec := VariantSpec{Name: "original", Quality: 90, Format: FormatKeepOriginal}

	// when
	variant, err := EncodeVariant(seed.Bytes, "webp", spec)

	// then
	require.NoError(t, err)
	assert.Equal(t, "image/webp", variant.ContentType)
}

func TestEncodeVariant_ShouldWrapDecodeFailureWithVariantName(t *testing.T) {
	// given
	src := []byte("definitely not an image")
	spec := VariantSpec{Name: "thumbnail", MaxWidth: 300, MaxHeight: 300, Quality: 80, Format: FormatWebP}

	// when
	_, err := EncodeVariant(src, "jpg", spec)

	// then
	require.Error(t, err)
	var encodeErr *EncodeError
	require.ErrorAs(t, err, &encodeErr)
	assert.Equal(t, "thumbnail", encodeErr.Variant)
}
