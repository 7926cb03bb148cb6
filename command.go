package gogauge

// CommandType identifies the type of a draw command.
type CommandType uint8

const (
	CmdEllipse  CommandType = iota // filled/outlined ellipse
	CmdPieSlice                    // filled/outlined circular sector
	CmdLine                        // stroked line segment
	CmdText                        // center-anchored text
	CmdPolygon                     // filled polygon
	CmdRect                        // filled/outlined rectangle
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdEllipse:  "Ellipse",
	CmdPieSlice: "PieSlice",
	CmdLine:     "Line",
	CmdText:     "Text",
	CmdPolygon:  "Polygon",
	CmdRect:     "Rect",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all draw command types.
// The Layout function emits commands in back-to-front paint order; a
// Surface replays them without reordering.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// EllipseCommand draws an ellipse centered at Center with the given
// radii. Nil Fill or Outline skips that pass.
type EllipseCommand struct {
	Center  Point
	RX, RY  float64
	Fill    *Color
	Outline *Color
	Width   float64
}

func (EllipseCommand) Type() CommandType { return CmdEllipse }

// PieSliceCommand draws a filled circular sector. Span may be
// unnormalized (end past 360°) for zones crossing the origin; surfaces
// that cannot sweep past a full turn should draw Span.Split() instead.
type PieSliceCommand struct {
	Center  Point
	Radius  float64
	Span    ArcSpan
	Fill    *Color
	Outline *Color
	Width   float64
}

func (PieSliceCommand) Type() CommandType { return CmdPieSlice }

// LineCommand strokes a straight segment.
type LineCommand struct {
	From, To Point
	Color    Color
	Width    float64
}

func (LineCommand) Type() CommandType { return CmdLine }

// TextCommand draws a string anchored at its center point.
type TextCommand struct {
	At    Point
	Text  string
	Color Color
	Size  float64 // font size in points
}

func (TextCommand) Type() CommandType { return CmdText }

// PolygonCommand fills a closed polygon.
type PolygonCommand struct {
	Points []Point
	Fill   Color
}

func (PolygonCommand) Type() CommandType { return CmdPolygon }

// RectCommand draws an axis-aligned rectangle between two corners.
type RectCommand struct {
	Min, Max Point
	Fill     *Color
	Outline  *Color
	Width    float64
}

func (RectCommand) Type() CommandType { return CmdRect }
