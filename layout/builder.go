package layout

import (
	"fmt"
	"sort"

	"github.com/ByLCY/cvpress/binding"
	"github.com/ByLCY/cvpress/resume"
)

// 模板名称，与命令行 --layout 取值一致。
const (
	SingleColumnName = "base"
	TwoColumnName    = "two_column"
)

// Template 在 Document 上按固定顺序排版一份简历。
type Template interface {
	Name() string
	Compose(doc *Document, r *resume.Resume) error
}

var templates = map[string]Template{
	SingleColumnName: SingleColumn{},
	TwoColumnName:    TwoColumn{},
}

// TemplateFor 按名称查找模板。
func TemplateFor(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q（可选：%v）", ErrUnknownLayout, name, TemplateNames())
	}
	return t, nil
}

// TemplateNames 返回全部模板名称（已排序）。
func TemplateNames() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Document 是一次 Build 的排版上下文：页面几何、已解析的参数与独占的 Canvas。
type Document struct {
	Geometry   Geometry
	Config     Config
	canvas     Canvas
	typesetter Typesetter
}

// NewCursor 在 column 内创建起始基线为 y 的光标，行高取 Config.Leading()。
func (d *Document) NewCursor(column Column, y float64) *Cursor {
	return NewCursor(d.canvas, d.typesetter, d.Geometry, column, y, d.Config.Leading())
}

// Build 使用 tmpl 排版简历并返回逐页定位好的文本行。
func Build(r *resume.Resume, tmpl Template, opts BuildOptions) (*Result, error) {
	if r == nil {
		return nil, fmt.Errorf("简历为空")
	}
	if tmpl == nil {
		return nil, fmt.Errorf("%w: 模板为空", ErrUnknownLayout)
	}
	if opts.Typesetter == nil {
		return nil, fmt.Errorf("layout: 缺少排版后端 Typesetter")
	}

	geometry := opts.Geometry
	if geometry == (Geometry{}) {
		geometry = Letter()
	}
	if err := geometry.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	collector := newPageCollector(geometry)
	doc := &Document{
		Geometry:   geometry,
		Config:     opts.Config,
		canvas:     collector,
		typesetter: opts.Typesetter,
	}
	if err := tmpl.Compose(doc, r); err != nil {
		return nil, err
	}

	return &Result{
		Template: tmpl.Name(),
		Pages:    collector.pages(),
		Meta:     resolveMeta(opts.Meta, opts.Bindings),
	}, nil
}

// DefaultMeta 返回默认的文档元信息模板。
func DefaultMeta() DocumentMeta {
	return DocumentMeta{
		Title:   "${name}",
		Author:  "${name}",
		Subject: "${headline}",
		Creator: "cvpress",
	}
}

func resolveMeta(meta DocumentMeta, data map[string]interface{}) DocumentMeta {
	if data == nil {
		return meta
	}
	out := DocumentMeta{
		Title:   binding.Interpolate(meta.Title, data),
		Author:  binding.Interpolate(meta.Author, data),
		Subject: binding.Interpolate(meta.Subject, data),
		Creator: binding.Interpolate(meta.Creator, data),
	}
	for _, kw := range meta.Keywords {
		out.Keywords = append(out.Keywords, binding.Interpolate(kw, data))
	}
	return out
}
