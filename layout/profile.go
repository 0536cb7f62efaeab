package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/cvpress/binding"
	"github.com/ByLCY/cvpress/dsl"
	"github.com/ByLCY/cvpress/resume"
)

// Profile 是从 profile 文件解析出的覆盖项，未出现的部分保持为空。
type Profile struct {
	Name    string
	Version string
	// BaseDir 为 profile 文件所在目录，用于解析相对字体路径。
	BaseDir  string
	Geometry *Geometry
	Meta     DocumentMeta
	Layouts  map[string]Config
	Fonts    map[FontStyle]string
}

// ReadProfile 读取并解析 profile 文件。
func ReadProfile(path string) (*Profile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开 profile 文件 %s: %w", path, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidProfile, path, err)
	}
	p, err := LoadProfile(doc)
	if err != nil {
		return nil, err
	}
	p.BaseDir = filepath.Dir(path)
	return p, nil
}

// LoadProfile 将 DSL 文档转换为 Profile，未知的段落、键或取值均返回 ErrInvalidProfile。
func LoadProfile(doc *dsl.Document) (*Profile, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: 文档为空", ErrInvalidProfile)
	}
	p := &Profile{
		Name:    doc.Name,
		Version: doc.Version,
		Layouts: map[string]Config{},
		Fonts:   map[FontStyle]string{},
	}
	for _, section := range doc.Sections {
		var err error
		switch {
		case section.Meta != nil:
			err = p.loadMeta(section.Meta.Block)
		case section.Page != nil:
			err = p.loadPage(section.Page)
		case section.Layout != nil:
			err = p.loadLayout(section.Layout)
		case section.Fonts != nil:
			err = p.loadFonts(section.Fonts.Block)
		default:
			err = profileErrorf("未知的段落 %s", section.Kind())
		}
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ConfigFor 返回 profile 为 template 设置的参数，未设置时为零值。
func (p *Profile) ConfigFor(template string) Config {
	if p == nil {
		return Config{}
	}
	return p.Layouts[template]
}

// ApplyMeta 用 profile 中非空的元信息字段覆盖 base。
func (p *Profile) ApplyMeta(base DocumentMeta) DocumentMeta {
	if p == nil {
		return base
	}
	if p.Meta.Title != "" {
		base.Title = p.Meta.Title
	}
	if p.Meta.Author != "" {
		base.Author = p.Meta.Author
	}
	if p.Meta.Subject != "" {
		base.Subject = p.Meta.Subject
	}
	if p.Meta.Creator != "" {
		base.Creator = p.Meta.Creator
	}
	if len(p.Meta.Keywords) > 0 {
		base.Keywords = append([]string(nil), p.Meta.Keywords...)
	}
	return base
}

// FontPath 返回 style 对应的字体来源，相对路径以 BaseDir 为基准。
func (p *Profile) FontPath(style FontStyle) string {
	if p == nil {
		return ""
	}
	src := p.Fonts[style]
	if src == "" || strings.HasPrefix(src, "embed:") || filepath.IsAbs(src) || p.BaseDir == "" {
		return src
	}
	return filepath.Join(p.BaseDir, src)
}

func (p *Profile) loadMeta(block *dsl.Block) error {
	known := (&resume.Resume{}).Bindings()
	for _, a := range block.Assignments {
		for _, path := range binding.Placeholders(a.Value.Text()) {
			root, _, _ := strings.Cut(path, ".")
			if _, ok := known[root]; !ok {
				return profileErrorf("%s: 未知的占位符 ${%s}", a.Pos, path)
			}
		}
		switch a.Key {
		case "title":
			p.Meta.Title = a.Value.Text()
		case "author":
			p.Meta.Author = a.Value.Text()
		case "subject":
			p.Meta.Subject = a.Value.Text()
		case "creator":
			p.Meta.Creator = a.Value.Text()
		case "keywords":
			p.Meta.Keywords = a.Value.Strings()
		default:
			return profileErrorf("%s: meta 不支持 %s", a.Pos, a.Key)
		}
	}
	return nil
}

func (p *Profile) loadPage(section *dsl.PageSection) error {
	var landscape bool
	var margins []float64

	params := section.Spec.Params
	for i := 0; i < len(params); i++ {
		switch strings.ToLower(params[i].Value) {
		case "portrait":
			landscape = false
		case "landscape":
			landscape = true
		case "margin":
			for i+1 < len(params) && params[i+1].Type == "Number" {
				i++
				l, err := ParseLength(params[i].Value)
				if err != nil {
					return profileErrorf("%s: %v", params[i].Pos, err)
				}
				margins = append(margins, l.ToPT())
			}
			if len(margins) == 0 {
				return profileErrorf("%s: margin 缺少取值", params[i].Pos)
			}
		default:
			return profileErrorf("%s: page 不支持参数 %s", params[i].Pos, params[i].Raw)
		}
	}
	if section.Block != nil {
		for _, a := range section.Block.Assignments {
			if a.Key != "margin" {
				return profileErrorf("%s: page 不支持 %s", a.Pos, a.Key)
			}
			margins = margins[:0]
			for _, raw := range a.Value.Strings() {
				l, err := ParseLength(raw)
				if err != nil {
					return profileErrorf("%s: %v", a.Pos, err)
				}
				margins = append(margins, l.ToPT())
			}
		}
	}

	g, err := PageGeometry(section.Spec.Size, landscape)
	if err != nil {
		return profileErrorf("%s: %v", section.Pos, err)
	}
	if len(margins) > 0 {
		m, err := expandMargins(margins)
		if err != nil {
			return profileErrorf("%s: %v", section.Pos, err)
		}
		g.Margin = m
	}
	if err := g.Validate(); err != nil {
		return profileErrorf("%s: %v", section.Pos, err)
	}
	p.Geometry = &g
	return nil
}

// expandMargins 按 CSS 规则展开 1 至 4 个边距值（上 右 下 左）。
func expandMargins(v []float64) (Margin, error) {
	switch len(v) {
	case 1:
		return Margin{Top: v[0], Right: v[0], Bottom: v[0], Left: v[0]}, nil
	case 2:
		return Margin{Top: v[0], Right: v[1], Bottom: v[0], Left: v[1]}, nil
	case 3:
		return Margin{Top: v[0], Right: v[1], Bottom: v[2], Left: v[1]}, nil
	case 4:
		return Margin{Top: v[0], Right: v[1], Bottom: v[2], Left: v[3]}, nil
	default:
		return Margin{}, fmt.Errorf("margin 需要 1 至 4 个取值，实际 %d 个", len(v))
	}
}

func (p *Profile) loadLayout(section *dsl.LayoutSection) error {
	if _, err := TemplateFor(section.Name); err != nil {
		return profileErrorf("%s: %v", section.Pos, err)
	}
	cfg := p.Layouts[section.Name]
	for _, a := range section.Block.Assignments {
		raw := a.Value.Text()
		if a.Key == "line_height" {
			spec, err := ParseLineHeight(raw)
			if err != nil {
				return profileErrorf("%s: %v", a.Pos, err)
			}
			spec.ApplyTo(&cfg)
			continue
		}
		l, err := ParseLength(raw)
		if err != nil {
			return profileErrorf("%s: %v", a.Pos, err)
		}
		switch a.Key {
		case "font_body":
			cfg.FontBody = l.ToPT()
		case "education_size":
			cfg.EducationSize = l.ToPT()
		case "column_gap":
			cfg.ColumnGap = l.ToPT()
		default:
			return profileErrorf("%s: layout 不支持 %s", a.Pos, a.Key)
		}
	}
	if err := cfg.Validate(); err != nil {
		return profileErrorf("%s: %v", section.Pos, err)
	}
	p.Layouts[section.Name] = cfg
	return nil
}

func (p *Profile) loadFonts(block *dsl.Block) error {
	for _, a := range block.Assignments {
		style := FontStyle(a.Key)
		switch style {
		case FontRegular, FontBold, FontItalic:
			p.Fonts[style] = a.Value.Text()
		default:
			return profileErrorf("%s: fonts 不支持 %s", a.Pos, a.Key)
		}
	}
	return nil
}

func profileErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidProfile}, args...)...)
}
