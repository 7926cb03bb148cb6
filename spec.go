// Package gogauge renders circular instrument-style gauge faces (thrust,
// engine, fuel, compass, horizon) as static raster images.
//
// A gauge is described declaratively by a GaugeSpec: an arc type, a set of
// color zones, a tick layout, labels, a rotation offset, and an optional
// overlay of icon primitives. The Layout function converts a spec into an
// ordered list of draw commands in a fixed canvas coordinate space; the
// commands are then replayed onto a drawing Surface (the production surface
// is backed by github.com/gogpu/gg) and saved as a PNG.
package gogauge

import "math"

// Point is a position in canvas coordinates. The origin is the top-left
// corner with y increasing downward, matching raster conventions.
type Point struct {
	X, Y float64
}

// Canvas describes the square drawing space a gauge is laid out in.
// Zones are drawn as pie slices of RingRadius and ticks sit between the
// ring and the outer radius.
type Canvas struct {
	Size        float64 // side length of the square canvas
	OuterRadius float64 // outer background circle
	RingRadius  float64 // radius of the zone ring / pie slices
}

// DefaultCanvas returns the 400-unit canvas all stock gauges use.
func DefaultCanvas() Canvas {
	return Canvas{Size: 400, OuterRadius: 180, RingRadius: 140}
}

// Center returns the canvas center point.
func (c Canvas) Center() Point {
	return Point{X: c.Size / 2, Y: c.Size / 2}
}

// ArcType is the angular range convention of a gauge face.
type ArcType int

const (
	// ArcStandard240 spans -120° to +120° inclusive.
	ArcStandard240 ArcType = iota
	// ArcFuel180 spans 180° to 360° inclusive (the bottom semicircle in
	// the native frame; stock fuel gauges rotate it by +90°).
	ArcFuel180
	// ArcCompass360 spans the full circle, 0° up to but excluding 360°.
	ArcCompass360
)

var arcTypeNames = [...]string{
	ArcStandard240: "standard-240",
	ArcFuel180:     "fuel-180",
	ArcCompass360:  "compass-360",
}

// String returns the arc type name.
func (a ArcType) String() string {
	if int(a) < len(arcTypeNames) {
		return arcTypeNames[a]
	}
	return "unknown"
}

// Span returns the native start and end angles in degrees.
func (a ArcType) Span() (start, end float64) {
	switch a {
	case ArcFuel180:
		return 180, 360
	case ArcCompass360:
		return 0, 360
	default:
		return -120, 120
	}
}

// Sweep returns the total angular extent of the arc in degrees.
func (a ArcType) Sweep() float64 {
	start, end := a.Span()
	return end - start
}

// inclusive reports whether the end angle itself carries a tick. The full
// circle excludes 360° since it coincides with 0°.
func (a ArcType) inclusive() bool {
	return a != ArcCompass360
}

// Angles generates the native-frame angle sequence for the arc at the
// given step in degrees. Bounds are inclusive except for the compass arc,
// where 360° is excluded as a duplicate of 0°.
func (a ArcType) Angles(step float64) []float64 {
	start, end := a.Span()
	if !a.inclusive() {
		end -= step
	}
	var angles []float64
	for ang := start; ang <= end+1e-9; ang += step {
		angles = append(angles, ang)
	}
	return angles
}

// ArcSpan is a (start, end) angle pair in degrees. End may exceed 360° to
// express a span that crosses the 0° origin (e.g. 310°→390°); such spans
// sweep through the origin in the stated direction.
type ArcSpan struct {
	Start, End float64
}

// Sweep returns the angular extent of the span in degrees.
func (s ArcSpan) Sweep() float64 {
	return s.End - s.Start
}

// Normalized returns the span with its start angle reduced into [0, 360),
// preserving the sweep.
func (s ArcSpan) Normalized() ArcSpan {
	start := math.Mod(s.Start, 360)
	if start < 0 {
		start += 360
	}
	return ArcSpan{Start: start, End: start + s.Sweep()}
}

// Split breaks a normalized span at the 360° boundary, for drawing
// surfaces that cannot sweep past a full turn. Spans that do not cross
// the boundary are returned unchanged.
func (s ArcSpan) Split() []ArcSpan {
	n := s.Normalized()
	if n.End <= 360 {
		return []ArcSpan{n}
	}
	return []ArcSpan{
		{Start: n.Start, End: 360},
		{Start: 0, End: n.End - 360},
	}
}

// shifted returns the span rotated by deg degrees.
func (s ArcSpan) shifted(deg float64) ArcSpan {
	return ArcSpan{Start: s.Start + deg, End: s.End + deg}
}

// ColorZone is a colored pie-slice band of the gauge ring, expressed in
// the gauge's native (unrotated) frame.
type ColorZone struct {
	Span    ArcSpan
	Fill    Color
	Outline Color
	Width   float64 // outline stroke width
}

// TickStyle describes the graduation layout of a gauge face. Radial
// positions are insets measured inward from the canvas outer radius.
type TickStyle struct {
	MajorStep float64 // degrees between major ticks
	MinorStep float64 // degrees between minor ticks

	MajorInset float64 // inner end of a major tick
	MinorInset float64 // inner end of a minor tick
	EndInset   float64 // outer end of every tick
	LabelInset float64 // label anchor radius

	MajorWidth float64
	MinorWidth float64
}

// DefaultTickStyle returns the 30°/10° graduation used by the stock
// gauges.
func DefaultTickStyle() *TickStyle {
	return &TickStyle{
		MajorStep:  30,
		MinorStep:  10,
		MajorInset: 25,
		MinorInset: 20,
		EndInset:   10,
		LabelInset: 45,
		MajorWidth: 3,
		MinorWidth: 2,
	}
}

// ratio returns the major/minor step ratio N; every Nth element of the
// minor angle sequence is a major tick.
func (t *TickStyle) ratio() int {
	return int(t.MajorStep / t.MinorStep)
}

// PrimitiveKind identifies an overlay primitive shape.
type PrimitiveKind int

const (
	PrimitiveRect PrimitiveKind = iota
	PrimitiveLine
	PrimitiveEllipse
	// PrimitiveDroplet is a droplet glyph: the ellipse given by the
	// bounding box plus a triangular cap rising above it.
	PrimitiveDroplet
)

// Primitive is one shape of an icon or symbol overlay. Min/Max are the
// bounding box corners for rects, ellipses and droplets, and the two
// endpoints for lines.
type Primitive struct {
	Kind    PrimitiveKind
	Min     Point
	Max     Point
	Fill    Color
	Outline *Color // nil for no outline
	Width   float64
}

// Overlay is an ordered set of primitives drawn on the gauge face after
// ticks and before the title text.
type Overlay struct {
	Primitives []Primitive
}

// GaugeSpec is the complete declarative description of one gauge face.
// Specs are constructed once from static catalog data and are not
// modified afterwards.
type GaugeSpec struct {
	Name     string
	Title    string
	Subtitle string

	Canvas   Canvas
	Arc      ArcType
	Rotation float64 // degrees added to every angle before layout

	Zones  []ColorZone
	Ticks  *TickStyle // nil for a gauge without graduations
	Labels []string   // indexed by major tick position; "" renders nothing

	Overlay *Overlay
	Theme   Theme
	ShowHub bool
}

// MinorAngles returns the full native-frame angle sequence at the minor
// step. Returns nil when the spec has no ticks.
func (s *GaugeSpec) MinorAngles() []float64 {
	if s.Ticks == nil {
		return nil
	}
	return s.Arc.Angles(s.Ticks.MinorStep)
}

// MajorAngles returns the native-frame major tick angles: every Nth
// element of the minor sequence.
func (s *GaugeSpec) MajorAngles() []float64 {
	if s.Ticks == nil {
		return nil
	}
	n := s.Ticks.ratio()
	minors := s.MinorAngles()
	var majors []float64
	for i := 0; i < len(minors); i += n {
		majors = append(majors, minors[i])
	}
	return majors
}

// Angle conversion helpers.

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// pointOnCircle converts a polar coordinate around c to canvas space.
// Angles are in degrees, 0° east, increasing clockwise (y grows down).
func pointOnCircle(c Point, r, deg float64) Point {
	rad := Radians(deg)
	return Point{
		X: c.X + r*math.Cos(rad),
		Y: c.Y + r*math.Sin(rad),
	}
}
