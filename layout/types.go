package layout

// 该文件定义布局结果，供布局计算、渲染与调试 JSON 共用。
// 坐标与尺寸统一使用 pt，原点位于页面左下角，y 轴向上。

// Result 保存布局后的页面与文档元信息。
type Result struct {
	Template string       `json:"template"`
	Pages    []Page       `json:"pages"`
	Meta     DocumentMeta `json:"meta"`
}

// Page 记录页面尺寸、边距与已经定位好的文本行。
type Page struct {
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Margin Margin    `json:"margin"`
	Texts  []TextBox `json:"texts"`
}

// Margin 以 pt 为单位。
type Margin struct {
	Top    float64 `json:"top" validate:"gte=0"`
	Right  float64 `json:"right" validate:"gte=0"`
	Bottom float64 `json:"bottom" validate:"gte=0"`
	Left   float64 `json:"left" validate:"gte=0"`
}

// TextBox 表示一行已经排好坐标的文本，Y 为基线位置。
type TextBox struct {
	Content  string    `json:"content"`
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Font     FontStyle `json:"font"`
	FontSize float64   `json:"fontSize"`
}

// Style 为 Typesetter 与 Canvas 使用的字形与字号组合。
type Style struct {
	Font FontStyle
	Size float64
}

// FontStyle 区分正文、粗体与斜体三种字形。
type FontStyle string

const (
	FontRegular FontStyle = "regular"
	FontBold    FontStyle = "bold"
	FontItalic  FontStyle = "italic"
)

// Regular/Bold/Italic 以给定字号构造 Style。
func Regular(size float64) Style { return Style{Font: FontRegular, Size: size} }
func Bold(size float64) Style    { return Style{Font: FontBold, Size: size} }
func Italic(size float64) Style  { return Style{Font: FontItalic, Size: size} }

// DocumentMeta 保存 PDF 元信息，字段可包含 ${path} 占位符。
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}

// Texts 按页序返回全部文本行，便于检查输出顺序。
func (r *Result) Texts() []TextBox {
	if r == nil {
		return nil
	}
	var out []TextBox
	for _, p := range r.Pages {
		out = append(out, p.Texts...)
	}
	return out
}
