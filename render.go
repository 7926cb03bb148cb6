package gogauge

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
)

// ImageFormat represents the output image format.
type ImageFormat int

const (
	ImageFormatPNG ImageFormat = iota
	ImageFormatJPEG
)

// RenderOptions configures gauge-to-image rendering.
type RenderOptions struct {
	// Size is the output image side length in pixels. The gauge is laid
	// out in its canvas space and rescaled if Size differs from it.
	// Default: the spec's canvas size (400).
	Size int
	// Format is the output image format (PNG or JPEG).
	Format ImageFormat
	// JPEGQuality is the JPEG quality (1-100). Default: 90.
	JPEGQuality int
}

// DefaultRenderOptions returns default rendering options.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Size:        400,
		Format:      ImageFormatPNG,
		JPEGQuality: 90,
	}
}

// RenderImage lays out the gauge and rasterizes it. The background is
// transparent; only PNG output preserves the alpha channel.
func RenderImage(spec *GaugeSpec, opts *RenderOptions) (image.Image, error) {
	if opts == nil {
		opts = DefaultRenderOptions()
	}

	side := int(spec.Canvas.Size)
	surf, err := newCanvasSurface(side)
	if err != nil {
		return nil, fmt.Errorf("drawing surface: %w", err)
	}

	Replay(Layout(spec), surf)

	img := detachImage(surf.dc.Image())
	if err := surf.Close(); err != nil {
		return nil, fmt.Errorf("close surface: %w", err)
	}

	if opts.Size > 0 && opts.Size != side {
		img = scaleImage(img, opts.Size, opts.Size)
	}
	return img, nil
}

// SaveImage renders the gauge and writes it to path.
func SaveImage(spec *GaugeSpec, path string, opts *RenderOptions) error {
	img, err := RenderImage(spec, opts)
	if err != nil {
		return err
	}
	return saveImage(img, path, opts)
}

func saveImage(img image.Image, path string, opts *RenderOptions) error {
	if opts == nil {
		opts = DefaultRenderOptions()
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	switch opts.Format {
	case ImageFormatJPEG:
		quality := opts.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = 90
		}
		return jpeg.Encode(f, img, &jpeg.Options{Quality: quality})
	default:
		return png.Encode(f, img)
	}
}

// detachImage copies the surface pixels so the result stays valid after
// the drawing context is closed.
func detachImage(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	xdraw.Draw(dst, b, src, b.Min, xdraw.Src)
	return dst
}

// scaleImage resamples src to the given dimensions.
func scaleImage(src image.Image, dstW, dstH int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// --- gg-backed surface ---

// The label font is parsed once per process. All stock gauges use the
// same embedded face, so there is no per-gauge font configuration.
var (
	fontOnce   sync.Once
	fontSource *ggtext.FontSource
	fontErr    error
)

func gaugeFontSource() (*ggtext.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = ggtext.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// canvasSurface implements Surface on a gg software context.
type canvasSurface struct {
	dc     *gg.Context
	source *ggtext.FontSource
	faces  map[float64]ggtext.Face // size -> cached face
}

func newCanvasSurface(side int) (*canvasSurface, error) {
	src, err := gaugeFontSource()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &canvasSurface{
		dc:     gg.NewContext(side, side),
		source: src,
		faces:  make(map[float64]ggtext.Face),
	}, nil
}

func (s *canvasSurface) Close() error {
	return s.dc.Close()
}

func (s *canvasSurface) face(size float64) ggtext.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := s.source.Face(size)
	s.faces[size] = f
	return f
}

// paint fills and/or strokes the current path.
func (s *canvasSurface) paint(fill, outline *Color, width float64) {
	if width <= 0 {
		width = 1
	}
	switch {
	case fill != nil && outline != nil:
		s.dc.SetColor(fill.ToRGBA())
		_ = s.dc.FillPreserve()
		s.dc.SetColor(outline.ToRGBA())
		s.dc.SetLineWidth(width)
		_ = s.dc.Stroke()
	case fill != nil:
		s.dc.SetColor(fill.ToRGBA())
		_ = s.dc.Fill()
	case outline != nil:
		s.dc.SetColor(outline.ToRGBA())
		s.dc.SetLineWidth(width)
		_ = s.dc.Stroke()
	}
}

func (s *canvasSurface) DrawEllipse(center Point, rx, ry float64, fill, outline *Color, width float64) {
	s.dc.DrawEllipse(center.X, center.Y, rx, ry)
	s.paint(fill, outline, width)
}

// DrawPieSlice sweeps the sector from span.Start to span.End. gg arcs are
// built in continuous radians, so spans past 360° sweep across the origin
// without splitting.
func (s *canvasSurface) DrawPieSlice(center Point, radius float64, span ArcSpan, fill, outline *Color, width float64) {
	start := pointOnCircle(center, radius, span.Start)
	s.dc.MoveTo(center.X, center.Y)
	s.dc.LineTo(start.X, start.Y)
	s.dc.DrawArc(center.X, center.Y, radius, Radians(span.Start), Radians(span.End))
	s.dc.ClosePath()
	s.paint(fill, outline, width)
}

func (s *canvasSurface) DrawLine(from, to Point, col Color, width float64) {
	s.dc.SetColor(col.ToRGBA())
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	_ = s.dc.Stroke()
}

func (s *canvasSurface) DrawText(at Point, txt string, col Color, size float64) {
	face := s.face(size)
	if face == nil {
		return
	}
	s.dc.SetFont(face)
	s.dc.SetColor(col.ToRGBA())
	s.dc.DrawStringAnchored(txt, at.X, at.Y, 0.5, 0.5)
}

func (s *canvasSurface) DrawPolygon(points []Point, fill Color) {
	if len(points) < 3 {
		return
	}
	s.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.ClosePath()
	s.dc.SetColor(fill.ToRGBA())
	_ = s.dc.Fill()
}

func (s *canvasSurface) DrawRectangle(min, max Point, fill, outline *Color, width float64) {
	s.dc.DrawRectangle(min.X, min.Y, max.X-min.X, max.Y-min.Y)
	s.paint(fill, outline, width)
}
