package layout

import (
	"fmt"
	"strings"
)

// 默认版式常量，单位 pt。
const (
	DefaultMargin     = 50.0
	DefaultLineHeight = 12.0
	SectionSpacing    = 20.0
	JobSpacing        = 10.0
	DefaultColumnGap  = 30.0

	FontHeader       = 18.0
	FontSectionTitle = 14.0
	FontJobTitle     = 12.0
	FontBody         = 10.0

	// LeftColumnRatio 为双栏模板左栏占 (可用宽度 - 栏间距) 的比例。
	LeftColumnRatio = 0.7
)

var pagePresets = map[string][2]float64{
	"LETTER": {612, 792},
	"LEGAL":  {612, 1008},
	"A4":     {595.28, 841.89},
	"A5":     {419.53, 595.28},
}

// Geometry 描述页面尺寸与边距（pt）。
type Geometry struct {
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
	Margin Margin  `json:"margin"`
}

// Letter 返回 US Letter 纵向页面与 50pt 四边边距。
func Letter() Geometry {
	g, _ := PageGeometry("letter", false)
	return g
}

// PageGeometry 按预设名称构造页面，landscape 时交换宽高。
func PageGeometry(size string, landscape bool) (Geometry, error) {
	base, ok := pagePresets[strings.ToUpper(size)]
	if !ok {
		return Geometry{}, fmt.Errorf("%w: 暂不支持的纸张尺寸：%s", ErrInvalidConfig, size)
	}
	width, height := base[0], base[1]
	if landscape {
		width, height = height, width
	}
	return Geometry{
		Width:  width,
		Height: height,
		Margin: Margin{Top: DefaultMargin, Right: DefaultMargin, Bottom: DefaultMargin, Left: DefaultMargin},
	}, nil
}

// Top 为每页首行的基线位置：页面高度减去上边距。
func (g Geometry) Top() float64 { return g.Height - g.Margin.Top }

// Bottom 为下边距位置，光标低于此值时下一行需要换页。
func (g Geometry) Bottom() float64 { return g.Margin.Bottom }

// UsableWidth 为页面宽度减去左右边距。
func (g Geometry) UsableWidth() float64 { return g.Width - g.Margin.Left - g.Margin.Right }

// FullColumn 返回横跨整个可用宽度的栏。
func (g Geometry) FullColumn() Column {
	return Column{X: g.Margin.Left, Width: g.UsableWidth()}
}

// Validate 检查尺寸为正、边距非负且内容区域非空。
func (g Geometry) Validate() error {
	if err := validate.Struct(g); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if g.UsableWidth() <= 0 {
		return fmt.Errorf("%w: 左右边距超出页面宽度", ErrInvalidConfig)
	}
	if g.Top() <= g.Bottom() {
		return fmt.Errorf("%w: 上下边距超出页面高度", ErrInvalidConfig)
	}
	return nil
}

// Column 是页面内固定的水平区域。
type Column struct {
	X     float64 `json:"x"`
	Width float64 `json:"width"`
}

// Columns 按 70/30 比例在可用宽度内划分左右两栏，gap 为栏间距。
// left.Width + gap + right.Width 恒等于可用宽度。
func Columns(g Geometry, gap float64) (left, right Column) {
	span := g.UsableWidth() - gap
	left = Column{X: g.Margin.Left, Width: LeftColumnRatio * span}
	right = Column{X: g.Margin.Left + left.Width + gap, Width: span - left.Width}
	return left, right
}
