package gogauge

// Layout converts a gauge spec into an ordered draw command list. It is a
// pure function of the spec: no I/O, no error conditions. Well-formedness
// of the spec is the caller's responsibility (see Validate), enforced at
// catalog construction time rather than here.
//
// Paint order matters: zone slices are emitted before the inner face
// circle and before every tick, so the face occludes the zone fill inside
// the ring and only a colored band stays visible.
func Layout(spec *GaugeSpec) []Command {
	cv := spec.Canvas
	center := cv.Center()
	th := spec.Theme

	var cmds []Command

	// Background circle.
	cmds = append(cmds, EllipseCommand{
		Center:  center,
		RX:      cv.OuterRadius,
		RY:      cv.OuterRadius,
		Fill:    &th.Background,
		Outline: &th.BackgroundOutline,
		Width:   th.BackgroundWidth,
	})

	// Color zones. Zones are authored in the gauge's native frame; the
	// rotation offset is applied here so the same zone tables serve both
	// rotated and unrotated variants. Spans are passed through
	// unnormalized — a span like 310°→390° sweeps across the origin.
	for _, z := range spec.Zones {
		fill, outline := z.Fill, z.Outline
		cmds = append(cmds, PieSliceCommand{
			Center:  center,
			Radius:  cv.RingRadius,
			Span:    z.Span.shifted(spec.Rotation),
			Fill:    &fill,
			Outline: &outline,
			Width:   z.Width,
		})
	}

	// Inner face circle, covering the zone fill inside the ring.
	if th.FaceRadius > 0 {
		cmds = append(cmds, EllipseCommand{
			Center:  center,
			RX:      th.FaceRadius,
			RY:      th.FaceRadius,
			Fill:    &th.Face,
			Outline: &th.FaceOutline,
			Width:   th.FaceWidth,
		})
	}

	cmds = append(cmds, layoutTicks(spec, center)...)

	if spec.Overlay != nil {
		cmds = append(cmds, layoutOverlay(spec.Overlay)...)
	}

	if spec.Title != "" {
		cmds = append(cmds, TextCommand{
			At:    Point{X: center.X, Y: th.TitleY},
			Text:  spec.Title,
			Color: th.Title,
			Size:  th.TitleSize,
		})
	}
	if spec.Subtitle != "" {
		cmds = append(cmds, TextCommand{
			At:    Point{X: center.X, Y: th.SubtitleY},
			Text:  spec.Subtitle,
			Color: th.Subtitle,
			Size:  th.SubtitleSize,
		})
	}

	if spec.ShowHub {
		cmds = append(cmds, EllipseCommand{
			Center:  center,
			RX:      th.HubRadius,
			RY:      th.HubRadius,
			Fill:    &th.HubFill,
			Outline: &th.HubOutline,
			Width:   2,
		})
	}

	return cmds
}

// layoutTicks emits major ticks with their labels, then minor ticks.
// The major subsequence is every Nth element of the minor sequence where
// N is the major/minor step ratio; labels index into the major
// subsequence by position.
func layoutTicks(spec *GaugeSpec, center Point) []Command {
	ts := spec.Ticks
	if ts == nil {
		return nil
	}
	cv := spec.Canvas
	th := spec.Theme
	n := ts.ratio()
	minors := spec.MinorAngles()

	var cmds []Command

	major := 0
	for i, native := range minors {
		if i%n != 0 {
			continue
		}
		angle := native + spec.Rotation
		cmds = append(cmds, LineCommand{
			From:  pointOnCircle(center, cv.OuterRadius-ts.MajorInset, angle),
			To:    pointOnCircle(center, cv.OuterRadius-ts.EndInset, angle),
			Color: th.MajorTick,
			Width: ts.MajorWidth,
		})
		if major < len(spec.Labels) && spec.Labels[major] != "" {
			cmds = append(cmds, TextCommand{
				At:    pointOnCircle(center, cv.OuterRadius-ts.LabelInset, angle),
				Text:  spec.Labels[major],
				Color: th.Label,
				Size:  th.LabelSize,
			})
		}
		major++
	}

	for i, native := range minors {
		if i%n == 0 {
			continue
		}
		angle := native + spec.Rotation
		cmds = append(cmds, LineCommand{
			From:  pointOnCircle(center, cv.OuterRadius-ts.MinorInset, angle),
			To:    pointOnCircle(center, cv.OuterRadius-ts.EndInset, angle),
			Color: th.MinorTick,
			Width: ts.MinorWidth,
		})
	}

	return cmds
}

// layoutOverlay expands overlay primitives into draw commands. A droplet
// contributes two commands (round body plus triangular cap) but counts as
// a single primitive.
func layoutOverlay(ov *Overlay) []Command {
	var cmds []Command
	for _, p := range ov.Primitives {
		switch p.Kind {
		case PrimitiveRect:
			fill := p.Fill
			cmds = append(cmds, RectCommand{
				Min:     p.Min,
				Max:     p.Max,
				Fill:    &fill,
				Outline: p.Outline,
				Width:   p.Width,
			})
		case PrimitiveLine:
			cmds = append(cmds, LineCommand{
				From:  p.Min,
				To:    p.Max,
				Color: p.Fill,
				Width: p.Width,
			})
		case PrimitiveEllipse:
			fill := p.Fill
			cmds = append(cmds, EllipseCommand{
				Center:  Point{X: (p.Min.X + p.Max.X) / 2, Y: (p.Min.Y + p.Max.Y) / 2},
				RX:      (p.Max.X - p.Min.X) / 2,
				RY:      (p.Max.Y - p.Min.Y) / 2,
				Fill:    &fill,
				Outline: p.Outline,
				Width:   p.Width,
			})
		case PrimitiveDroplet:
			fill := p.Fill
			cx := (p.Min.X + p.Max.X) / 2
			// The cap apex rises two-thirds of the body width above
			// the round part.
			apex := p.Min.Y - (p.Max.X-p.Min.X)*2/3
			cmds = append(cmds, EllipseCommand{
				Center: Point{X: cx, Y: (p.Min.Y + p.Max.Y) / 2},
				RX:     (p.Max.X - p.Min.X) / 2,
				RY:     (p.Max.Y - p.Min.Y) / 2,
				Fill:   &fill,
			})
			cmds = append(cmds, PolygonCommand{
				Points: []Point{
					{X: cx, Y: apex},
					{X: p.Min.X, Y: p.Min.Y},
					{X: p.Max.X, Y: p.Min.Y},
				},
				Fill: p.Fill,
			})
		}
	}
	return cmds
}
