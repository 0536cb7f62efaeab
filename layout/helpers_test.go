package layout

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// stubTypesetter 以每个字符 0.5 倍字号估算宽度，避免测试依赖 renderer 包。
type stubTypesetter struct{}

func (stubTypesetter) TextWidth(content string, style Style) (float64, error) {
	return float64(utf8.RuneCountInString(content)) * style.Size * 0.5, nil
}

func (s stubTypesetter) WrapLines(content string, style Style, maxWidth float64) ([]string, error) {
	return GreedyWrap(content, maxWidth, func(v string) float64 {
		w, _ := s.TextWidth(v, style)
		return w
	}), nil
}

// failingTypesetter 在折行时返回错误。
type failingTypesetter struct{ stubTypesetter }

func (failingTypesetter) WrapLines(string, Style, float64) ([]string, error) {
	return nil, errors.New("font face missing")
}

// spyCanvas 按调用顺序记录 Canvas 操作。
type spyCanvas struct {
	ops []string
}

func (s *spyCanvas) SetStyle(style Style) {
	s.ops = append(s.ops, fmt.Sprintf("style %s %g", style.Font, style.Size))
}

func (s *spyCanvas) DrawString(x, y float64, text string) error {
	s.ops = append(s.ops, fmt.Sprintf("draw %g,%g %s", x, y, text))
	return nil
}

func (s *spyCanvas) NewPage() error {
	s.ops = append(s.ops, "newpage")
	return nil
}

// smallPage 返回 200x100pt、四边 10pt 边距的页面：Top=90，Bottom=10。
func smallPage() Geometry {
	return Geometry{Width: 200, Height: 100, Margin: Margin{Top: 10, Right: 10, Bottom: 10, Left: 10}}
}

func contents(texts []TextBox) []string {
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		out = append(out, t.Content)
	}
	return out
}

func findText(t []TextBox, content string) (TextBox, bool) {
	for _, tb := range t {
		if tb.Content == content {
			return tb, true
		}
	}
	return TextBox{}, false
}
