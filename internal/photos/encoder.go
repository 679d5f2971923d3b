package photos

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	webpencoder "github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// EncodeVariant decodes the source once, fits it inside the spec bounds with
// Lanczos resampling and re-encodes it under the spec's format policy.
// srcExt is the lowercased source extension without the dot; it only matters
// for the KEEP_ORIGINAL policy.
func EncodeVariant(src []byte, srcExt string, spec VariantSpec) (*EncodedVariant, error) {
	img, err := imaging.Decode(bytes.NewReader(src), imaging.AutoOrientation(true))
	if err != nil {
		return nil, &EncodeError{Variant: spec.Name, Err: fmt.Errorf("decode: %w", err)}
	}

	img = fitInside(img, spec)

	format := spec.Format
	if format == FormatKeepOriginal {
		switch strings.ToLower(srcExt) {
		case "jpg", "jpeg":
			format = FormatJPEG
		case "png":
			format = FormatPNG
		default:
			format = FormatWebP
		}
	}

	var buf bytes.Buffer
	switch format {
	case FormatJPEG:
		if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(spec.Quality)); err != nil {
			return nil, &EncodeError{Variant: spec.Name, Err: fmt.Errorf("encode jpeg: %w", err)}
		}
		return &EncodedVariant{Name: spec.Name, Bytes: buf.Bytes(), ContentType: "image/jpeg", Ext: "jpg"}, nil
	case FormatPNG:
		if err := imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
			return nil, &EncodeError{Variant: spec.Name, Err: fmt.Errorf("encode png: %w", err)}
		}
		return &EncodedVariant{Name: spec.Name, Bytes: buf.Bytes(), ContentType: "image/png", Ext: "png"}, nil
	default:
		options, err := webpencoder.NewLossyEncoderOptions(webpencoder.PresetDefault, float32(spec.Quality))
		if err != nil {
			return nil, &EncodeError{Variant: spec.Name, Err: fmt.Errorf("webp encoder options: %w", err)}
		}
		if err := webp.Encode(&buf, img, options); err != nil {
			return nil, &EncodeError{Variant: spec.Name, Err: fmt.Errorf("encode webp: %w", err)}
		}
		return &EncodedVariant{Name: spec.Name, Bytes: buf.Bytes(), ContentType: "image/webp", Ext: "webp"}, nil
	}
}

// fitInside scales down to the spec bounds preserving aspect ratio. Sources
// already within bounds pass through untouched: variants never upscale.
func fitInside(img image.Image, spec VariantSpec) image.Image {
	bounds := img.Bounds()
	if spec.MaxHeight > 0 {
		if bounds.Dx() <= spec.MaxWidth && bounds.Dy() <= spec.MaxHeight {
			return img
		}
		return imaging.Fit(img, spec.MaxWidth, spec.MaxHeight, imaging.Lanczos)
	}
	if spec.MaxWidth <= 0 || bounds.Dx() <= spec.MaxWidth {
		return img
	}
	return imaging.Resize(img, spec.MaxWidth, 0, imaging.Lanczos)
}
