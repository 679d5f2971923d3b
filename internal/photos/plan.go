package photos

// FormatPolicy decides the output encoding of a variant.
type FormatPolicy string

const (
	FormatWebP FormatPolicy = "webp"
	FormatJPEG FormatPolicy = "jpeg"
	FormatPNG  FormatPolicy = "png"

	// FormatKeepOriginal re-encodes jpg/jpeg/png sources in their own format
	// so the full-size variant stays universally decodable; everything else
	// still becomes WEBP.
	FormatKeepOriginal FormatPolicy = "original"
)

// VariantSpec describes one derivative to produce per upload. MaxHeight == 0
// means width-only scaling.
type VariantSpec struct {
	Name      string
	MaxWidth  int
	MaxHeight int
	Quality   int
	Format    FormatPolicy
}

// Plan is the ordered set of variants a backend will attempt. It is static
// process-wide configuration and never changes at runtime.
type Plan []VariantSpec

// PrimaryVariant is the variant whose URL callers persist as the display
// default: the largest width-capped one, not the literal original, so the
// common case stays bandwidth-bounded.
const PrimaryVariant = "large"

func DefaultPlan() Plan {
	return Plan{
		{Name: "thumbnail", MaxWidth: 300, MaxHeight: 300, Quality: 80, Format: FormatWebP},
		{Name: "small", MaxWidth: 640, Quality: 80, Format: FormatWebP},
		{Name: "medium", MaxWidth: 1280, Quality: 80, Format: FormatWebP},
		{Name: "large", MaxWidth: 1920, Quality: 82, Format: FormatWebP},
		{Name: "original", Quality: 90, Format: FormatKeepOriginal},
	}
}

// reducedVariants is the subset the filesystem backend persists to bound
// disk usage on the fallback path.
var reducedVariants = map[string]bool{
	"thumbnail": true,
	"large":     true,
}

// Reduced filters the plan down to the filesystem subset, keeping order.
func (p Plan) Reduced() Plan {
	out := make(Plan, 0, len(reducedVariants))
	for _, spec := range p {
		if reducedVariants[spec.Name] {
			out = append(out, spec)
		}
	}
	return out
}

// Names returns the variant names in plan order.
func (p Plan) Names() []string {
	names := make([]string, len(p))
	for i, spec := range p {
		names[i] = spec.Name
	}
	return names
}
