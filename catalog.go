package gogauge

import (
	"fmt"
	"path/filepath"
)

// CatalogEntry pairs a gauge spec with its fixed output filename.
type CatalogEntry struct {
	Spec     *GaugeSpec
	Filename string
}

// Catalog returns the full set of stock gauges in render order. Entries
// are built fresh on each call; specs are never mutated after
// construction.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{standardGauge("thrust", "THRUST", "Power"), "thrust-gauge.png"},
		{standardGauge("engine", "ENGINE", "Condition"), "engine-gauge.png"},
		{standardGauge("positive", "POSITIVE", "Emotion"), "positive-gauge.png"},
		{standardGauge("weight", "WEIGHT", "Balance"), "weight-gauge.png"},
		{standardGauge("negative", "NEGATIVE", "Stress"), "negative-gauge.png"},
		{fuelGauge(), "fuel-gauge.png"},
		{compassGauge(), "compass-gauge.png"},
		{horizonGauge(), "horizon-gauge.png"},
	}
}

// Zone palette shared by the value gauges: red (low), yellow (mid),
// green (high).
var (
	zoneRedFill    = NewColor("#fca5a5")
	zoneRedLine    = NewColor("#dc2626")
	zoneYellowFill = NewColor("#fde68a")
	zoneYellowLine = NewColor("#fbbf24")
	zoneGreenFill  = NewColor("#bbf7d0")
	zoneGreenLine  = NewColor("#22c55e")
)

// standardGauge builds a 240° value gauge. Zones and ticks are authored
// in the native -120°..120° frame; the 270° rotation turns the arc
// opening to the top so the scale reads counter-clockwise from the
// bottom left, matching the original artwork.
func standardGauge(name, title, subtitle string) *GaugeSpec {
	return &GaugeSpec{
		Name:     name,
		Title:    title,
		Subtitle: subtitle,
		Canvas:   DefaultCanvas(),
		Arc:      ArcStandard240,
		Rotation: 270,
		Zones: []ColorZone{
			{Span: ArcSpan{Start: -120, End: -40}, Fill: zoneRedFill, Outline: zoneRedLine, Width: 2},
			{Span: ArcSpan{Start: -40, End: 40}, Fill: zoneYellowFill, Outline: zoneYellowLine, Width: 2},
			{Span: ArcSpan{Start: 40, End: 120}, Fill: zoneGreenFill, Outline: zoneGreenLine, Width: 2},
		},
		Ticks:   DefaultTickStyle(),
		Labels:  []string{"0", "", "", "", "50", "", "", "", "100"},
		Theme:   LightTheme(),
		ShowHub: true,
	}
}

// fuelGauge builds the 180° fuel gauge: the native bottom semicircle
// rotated by 90° so it sweeps over the top, full on the left ("F") and
// empty on the right ("E"), with the green zone at the full end. After
// rotation the yellow and red zones cross the 0° origin, exercising the
// wraparound span path.
func fuelGauge() *GaugeSpec {
	gray := NewColor("#666666")
	edge := NewColor("#333333")
	return &GaugeSpec{
		Name:     "fuel",
		Title:    "FUEL",
		Subtitle: "Energy Level",
		Canvas:   DefaultCanvas(),
		Arc:      ArcFuel180,
		Rotation: 90,
		Zones: []ColorZone{
			{Span: ArcSpan{Start: 180, End: 240}, Fill: zoneGreenFill, Outline: zoneGreenLine, Width: 2},
			{Span: ArcSpan{Start: 240, End: 300}, Fill: zoneYellowFill, Outline: zoneYellowLine, Width: 2},
			{Span: ArcSpan{Start: 300, End: 360}, Fill: zoneRedFill, Outline: zoneRedLine, Width: 2},
		},
		Ticks:  DefaultTickStyle(),
		Labels: []string{"F", "", "", "", "", "", "E"},
		Overlay: &Overlay{Primitives: []Primitive{
			// Fuel pump icon left of center: body, nozzle, display
			// screen, droplet.
			{Kind: PrimitiveRect, Min: Point{X: 120, Y: 165}, Max: Point{X: 160, Y: 215}, Fill: gray, Outline: &edge, Width: 1},
			{Kind: PrimitiveRect, Min: Point{X: 115, Y: 175}, Max: Point{X: 120, Y: 185}, Fill: gray, Outline: &edge, Width: 1},
			{Kind: PrimitiveRect, Min: Point{X: 128, Y: 175}, Max: Point{X: 152, Y: 185}, Fill: ColorWhite, Outline: &edge, Width: 1},
			{Kind: PrimitiveDroplet, Min: Point{X: 134, Y: 195}, Max: Point{X: 146, Y: 207}, Fill: gray},
		}},
		Theme:   LightTheme(),
		ShowHub: true,
	}
}

// compassGauge builds the full-circle compass rose. The dark face fills
// the whole ring since there are no zones to expose.
func compassGauge() *GaugeSpec {
	return &GaugeSpec{
		Name:     "compass",
		Title:    "COMPASS",
		Subtitle: "Direction",
		Canvas:   DefaultCanvas(),
		Arc:      ArcCompass360,
		Ticks:    DefaultTickStyle(),
		Labels:   []string{"N", "", "", "E", "", "", "S", "", "", "W", "", ""},
		Theme:    DarkTheme(),
		ShowHub:  true,
	}
}

// horizonGauge builds the attitude indicator: a full-face sky/ground
// split with a horizon line, wing symbol, and pitch ladder. It carries
// no graduations and no hub.
func horizonGauge() *GaugeSpec {
	sky := NewColor("#0066cc")
	ground := NewColor("#8b4513")
	frame := NewColor("#0f3460")
	wing := NewColor("#ffff00")
	wingEdge := NewColor("#ff8800")

	prims := []Primitive{
		// Horizon line across the face.
		{Kind: PrimitiveLine, Min: Point{X: 60, Y: 200}, Max: Point{X: 340, Y: 200}, Fill: ColorWhite, Width: 3},
		// Aircraft wing strokes and center dot.
		{Kind: PrimitiveLine, Min: Point{X: 160, Y: 200}, Max: Point{X: 180, Y: 200}, Fill: wing, Width: 4},
		{Kind: PrimitiveLine, Min: Point{X: 220, Y: 200}, Max: Point{X: 240, Y: 200}, Fill: wing, Width: 4},
		{Kind: PrimitiveEllipse, Min: Point{X: 192, Y: 192}, Max: Point{X: 208, Y: 208}, Fill: wing, Outline: &wingEdge, Width: 2},
	}
	// Pitch ladder: paired side marks every 10 units above and below the
	// horizon.
	for pitch := -30; pitch <= 30; pitch += 10 {
		if pitch == 0 {
			continue
		}
		y := 200 + float64(pitch)*2
		prims = append(prims,
			Primitive{Kind: PrimitiveLine, Min: Point{X: 80, Y: y}, Max: Point{X: 100, Y: y}, Fill: ColorWhite, Width: 2},
			Primitive{Kind: PrimitiveLine, Min: Point{X: 300, Y: y}, Max: Point{X: 320, Y: y}, Fill: ColorWhite, Width: 2},
		)
	}

	theme := DarkTheme()
	theme.FaceRadius = 0 // sky and ground stay visible across the face

	return &GaugeSpec{
		Name:     "horizon",
		Title:    "HORIZON",
		Subtitle: "Attitude",
		Canvas:   DefaultCanvas(),
		Arc:      ArcCompass360,
		Zones: []ColorZone{
			{Span: ArcSpan{Start: 0, End: 180}, Fill: ground, Outline: frame, Width: 1},
			{Span: ArcSpan{Start: 180, End: 360}, Fill: sky, Outline: frame, Width: 1},
		},
		Overlay: &Overlay{Primitives: prims},
		Theme:   theme,
	}
}

// RenderCatalog renders every stock gauge into dir. A spec that fails
// validation is reported and skipped; the rest of the batch continues.
// I/O failures abort the run, since a partial gauge set is not useful.
func RenderCatalog(dir string, opts *RenderOptions) error {
	for _, entry := range Catalog() {
		if err := entry.Spec.Validate(); err != nil {
			logger().Warn("skipping invalid gauge", "gauge", entry.Spec.Name, "error", err)
			continue
		}
		path := filepath.Join(dir, entry.Filename)
		if err := SaveImage(entry.Spec, path, opts); err != nil {
			return fmt.Errorf("render %s: %w", entry.Spec.Name, err)
		}
		logger().Debug("wrote gauge image", "gauge", entry.Spec.Name, "path", path)
	}
	return nil
}
