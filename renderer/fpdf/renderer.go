package fpdfrenderer

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"time"

	"codeberg.org/go-pdf/fpdf"

	"github.com/ByLCY/cvpress/fonts"
	"github.com/ByLCY/cvpress/layout"
	"github.com/ByLCY/cvpress/renderer"
)

// CoreFamily 是未提供 TTF 字体时使用的 PDF 内置字体族。
const CoreFamily = "Helvetica"

const ttfFamily = "cvpress"

// Renderer 基于 fpdf 测量与输出文本，单位为 pt，y 轴在输出时翻转为自顶向下。
type Renderer struct {
	opts Options

	mu      sync.Mutex
	measure *fpdf.Fpdf
	tr      func(string) string
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

// Options 配置 fpdf 渲染器。
type Options struct {
	// CreationDate 非零时固定 PDF 的创建与修改时间，使输出可重复。
	CreationDate time.Time
	// Fonts 为各样式提供 TTF 字体数据。任一样式设置后改用 UTF-8 字体，
	// 未设置的样式使用内置 Go 字体。
	Fonts map[layout.FontStyle][]byte
	// Compress 控制内容流压缩，默认不压缩便于检查输出。
	Compress bool
}

// NewRenderer 创建 fpdf 渲染器。
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

func (r *Renderer) utf8() bool { return len(r.opts.Fonts) > 0 }

func (r *Renderer) family() string {
	if r.utf8() {
		return ttfFamily
	}
	return CoreFamily
}

// newDocument 创建以 pt 为单位、无自动分页的文档。
func (r *Renderer) newDocument(width, height float64) (*fpdf.Fpdf, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(r.opts.Compress)
	if r.utf8() {
		for _, style := range []layout.FontStyle{layout.FontRegular, layout.FontBold, layout.FontItalic} {
			data := r.opts.Fonts[style]
			if len(data) == 0 {
				var err error
				if data, err = fonts.Load(defaultFont(style)); err != nil {
					return nil, err
				}
			}
			pdf.AddUTF8FontFromBytes(ttfFamily, styleString(style), data)
		}
	}
	if err := pdf.Error(); err != nil {
		return nil, err
	}
	return pdf, nil
}

// translator 返回写入前的文本转换：核心字体需要 cp1252，UTF-8 字体原样输出。
func (r *Renderer) translator(pdf *fpdf.Fpdf) func(string) string {
	if r.utf8() {
		return func(s string) string { return s }
	}
	return pdf.UnicodeTranslatorFromDescriptor("")
}

func (r *Renderer) measurer() (*fpdf.Fpdf, error) {
	if r.measure != nil {
		return r.measure, nil
	}
	pdf, err := r.newDocument(612, 792)
	if err != nil {
		return nil, err
	}
	r.measure = pdf
	r.tr = r.translator(pdf)
	return pdf, nil
}

// TextWidth 实现 layout.Typesetter。
func (r *Renderer) TextWidth(content string, style layout.Style) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.textWidth(content, style)
}

func (r *Renderer) textWidth(content string, style layout.Style) (float64, error) {
	pdf, err := r.measurer()
	if err != nil {
		return 0, layout.NewBackendError("load font", err)
	}
	pdf.SetFont(r.family(), styleString(style.Font), style.Size)
	w := pdf.GetStringWidth(r.tr(content))
	if err := pdf.Error(); err != nil {
		return 0, layout.NewBackendError("measure", err)
	}
	return w, nil
}

// WrapLines 实现 layout.Typesetter，使用与 canvas 渲染器相同的贪心折行。
func (r *Renderer) WrapLines(content string, style layout.Style, maxWidth float64) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var measureErr error
	lines := layout.GreedyWrap(content, maxWidth, func(s string) float64 {
		w, err := r.textWidth(s, style)
		if err != nil && measureErr == nil {
			measureErr = err
		}
		return w
	})
	if measureErr != nil {
		return nil, measureErr
	}
	return lines, nil
}

// Render 将布局结果输出为 PDF。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, layout.NewBackendError("render", fmt.Errorf("渲染结果为空"))
	}
	if len(result.Pages) == 0 {
		return nil, layout.NewBackendError("render", fmt.Errorf("缺少可渲染的页面"))
	}

	first := result.Pages[0]
	pdf, err := r.newDocument(first.Width, first.Height)
	if err != nil {
		return nil, layout.NewBackendError("load font", err)
	}
	tr := r.translator(pdf)
	r.applyMeta(pdf, result.Meta)

	for _, page := range result.Pages {
		// 尺寸已是实际宽高，方向固定为 P 以免 fpdf 再次交换
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: page.Width, Ht: page.Height})
		for _, tb := range page.Texts {
			pdf.SetFont(r.family(), styleString(tb.Font), tb.FontSize)
			pdf.Text(tb.X, page.Height-tb.Y, tr(tb.Content))
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, layout.NewBackendError("render", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) applyMeta(pdf *fpdf.Fpdf, meta layout.DocumentMeta) {
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetSubject(meta.Subject, true)
	pdf.SetCreator(meta.Creator, true)
	if len(meta.Keywords) > 0 {
		pdf.SetKeywords(strings.Join(meta.Keywords, ", "), true)
	}
	pdf.SetCatalogSort(true)
	if !r.opts.CreationDate.IsZero() {
		pdf.SetCreationDate(r.opts.CreationDate)
		pdf.SetModificationDate(r.opts.CreationDate)
	}
}

func styleString(style layout.FontStyle) string {
	switch style {
	case layout.FontBold:
		return "B"
	case layout.FontItalic:
		return "I"
	default:
		return ""
	}
}

func defaultFont(style layout.FontStyle) string {
	switch style {
	case layout.FontBold:
		return "embed:go-bold"
	case layout.FontItalic:
		return "embed:go-italic"
	default:
		return "embed:go-regular"
	}
}
