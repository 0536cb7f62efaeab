package canvasrenderer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/cvpress/fonts"
	"github.com/ByLCY/cvpress/layout"
	"github.com/ByLCY/cvpress/renderer"
)

// Renderer measures and draws text via github.com/tdewolff/canvas.
// The layout engine works in points; canvas works in millimeters with font
// sizes in points, so conversion happens only at this boundary.
type Renderer struct {
	baseDir string
	sources map[layout.FontStyle]Resource

	fontMu sync.Mutex
	family *canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	BaseDir string
	// Fonts overrides the built-in Go fonts per style.
	Fonts map[layout.FontStyle]Resource
}

// Resource can be provided either by Bytes or by Path; Path may use the
// "embed:" prefix for built-in fonts.
type Resource struct {
	Bytes []byte
	Path  string
}

var defaultFonts = map[layout.FontStyle]string{
	layout.FontRegular: fonts.EmbedPrefix + "go-regular",
	layout.FontBold:    fonts.EmbedPrefix + "go-bold",
	layout.FontItalic:  fonts.EmbedPrefix + "go-italic",
}

var fontStyles = map[layout.FontStyle]canvas.FontStyle{
	layout.FontRegular: canvas.FontRegular,
	layout.FontBold:    canvas.FontBold,
	layout.FontItalic:  canvas.FontItalic,
}

// NewRenderer creates a canvas-based renderer using the built-in fonts.
func NewRenderer(baseDir string) *Renderer { return NewRendererWithOptions(Options{BaseDir: baseDir}) }

// NewRendererWithOptions creates a renderer with font overrides.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{
		baseDir: opts.BaseDir,
		sources: map[layout.FontStyle]Resource{},
	}
	for style, path := range defaultFonts {
		r.sources[style] = Resource{Path: path}
	}
	for style, res := range opts.Fonts {
		if len(res.Bytes) == 0 && res.Path == "" {
			continue
		}
		r.sources[style] = res
	}
	return r
}

// Render renders the result into a PDF byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, layout.NewBackendError("render", fmt.Errorf("渲染结果为空"))
	}
	if len(result.Pages) == 0 {
		return nil, layout.NewBackendError("render", fmt.Errorf("缺少可渲染的页面"))
	}

	var buf bytes.Buffer
	first := result.Pages[0]
	writer := pdf.New(&buf, toMm(first.Width), toMm(first.Height), nil)
	applyMeta(writer, result.Meta)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(toMm(page.Width), toMm(page.Height))
		}
		c := canvas.New(toMm(page.Width), toMm(page.Height))
		ctx := canvas.NewContext(c)
		// 与布局一致：原点在左下角，y 轴向上
		ctx.SetCoordSystem(canvas.CartesianI)

		if err := r.drawPage(ctx, page); err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, layout.NewBackendError("render", fmt.Errorf("写入 PDF 失败: %w", err))
	}
	return buf.Bytes(), nil
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}

// TextWidth implements layout.Typesetter, returning the advance width in points.
func (r *Renderer) TextWidth(content string, style layout.Style) (float64, error) {
	face, err := r.fontFace(style)
	if err != nil {
		return 0, err
	}
	return toPt(face.TextWidth(content)), nil
}

// WrapLines implements layout.Typesetter using the shared greedy wrap.
func (r *Renderer) WrapLines(content string, style layout.Style, maxWidth float64) ([]string, error) {
	face, err := r.fontFace(style)
	if err != nil {
		return nil, err
	}
	return layout.GreedyWrap(content, maxWidth, func(s string) float64 {
		return toPt(face.TextWidth(s))
	}), nil
}

func (r *Renderer) drawPage(ctx *canvas.Context, page layout.Page) error {
	for _, tb := range page.Texts {
		face, err := r.fontFace(layout.Style{Font: tb.Font, Size: tb.FontSize})
		if err != nil {
			return err
		}
		// NewTextLine 以绘制坐标为基线
		line := canvas.NewTextLine(face, tb.Content, canvas.Left)
		ctx.DrawText(toMm(tb.X), toMm(tb.Y), line)
	}
	return nil
}

func (r *Renderer) fontFace(style layout.Style) (*canvas.FontFace, error) {
	family, err := r.ensureFamily()
	if err != nil {
		return nil, err
	}
	fs, ok := fontStyles[style.Font]
	if !ok {
		fs = canvas.FontRegular
	}
	return family.Face(style.Size, canvas.Black, fs, canvas.FontNormal), nil
}

func (r *Renderer) ensureFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if r.family != nil {
		return r.family, nil
	}
	family := canvas.NewFontFamily("cvpress")
	for _, style := range []layout.FontStyle{layout.FontRegular, layout.FontBold, layout.FontItalic} {
		data, err := r.loadFontBytes(r.sources[style])
		if err != nil {
			return nil, layout.NewBackendError("load font", fmt.Errorf("%s: %w", style, err))
		}
		if err := family.LoadFont(data, 0, fontStyles[style]); err != nil {
			return nil, layout.NewBackendError("load font", fmt.Errorf("%s: %w", style, err))
		}
	}
	r.family = family
	return family, nil
}

func (r *Renderer) loadFontBytes(res Resource) ([]byte, error) {
	if len(res.Bytes) > 0 {
		return res.Bytes, nil
	}
	src := res.Path
	if src == "" {
		return nil, fmt.Errorf("字体缺少 src")
	}
	if fonts.IsEmbedded(src) {
		return fonts.Load(src)
	}
	path := src
	if !filepath.IsAbs(path) && r.baseDir != "" {
		path = filepath.Join(r.baseDir, path)
	}
	return os.ReadFile(path)
}

// toPt 将毫米(mm)转换为点(pt)。
func toPt(mm float64) float64 { return mm * layout.MmToPt }

// toMm 将点(pt)转换为毫米(mm)。
func toMm(pt float64) float64 { return pt * layout.PtToMm }
