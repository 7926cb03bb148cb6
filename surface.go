package gogauge

// Surface is the drawing capability a gauge is painted onto. The
// production implementation rasterizes via github.com/gogpu/gg; tests use
// in-memory stubs.
//
// Pie slice spans may be unnormalized (end past 360°). Implementations
// backed by a surface that cannot sweep past a full turn should draw
// span.Split() as two sectors instead.
type Surface interface {
	DrawEllipse(center Point, rx, ry float64, fill, outline *Color, width float64)
	DrawPieSlice(center Point, radius float64, span ArcSpan, fill, outline *Color, width float64)
	DrawLine(from, to Point, col Color, width float64)
	DrawText(at Point, text string, col Color, size float64)
	DrawPolygon(points []Point, fill Color)
	DrawRectangle(min, max Point, fill, outline *Color, width float64)
}

// Replay dispatches a command list to a surface in order.
func Replay(cmds []Command, s Surface) {
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case EllipseCommand:
			s.DrawEllipse(c.Center, c.RX, c.RY, c.Fill, c.Outline, c.Width)
		case PieSliceCommand:
			s.DrawPieSlice(c.Center, c.Radius, c.Span, c.Fill, c.Outline, c.Width)
		case LineCommand:
			s.DrawLine(c.From, c.To, c.Color, c.Width)
		case TextCommand:
			s.DrawText(c.At, c.Text, c.Color, c.Size)
		case PolygonCommand:
			s.DrawPolygon(c.Points, c.Fill)
		case RectCommand:
			s.DrawRectangle(c.Min, c.Max, c.Fill, c.Outline, c.Width)
		}
	}
}
