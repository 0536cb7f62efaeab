package layout

// pageCollector 实现 Canvas：把每次绘制记录为当前页的 TextBox。
// 它是一次 Build 独占的可变状态，完成后通过 pages() 交给渲染器。
type pageCollector struct {
	geometry Geometry
	accs     []*pageAccumulator
	current  int
	style    Style
}

type pageAccumulator struct {
	texts []TextBox
}

var _ Canvas = (*pageCollector)(nil)

func newPageCollector(g Geometry) *pageCollector {
	pc := &pageCollector{geometry: g}
	pc.newPage()
	return pc
}

func (pc *pageCollector) newPage() *pageAccumulator {
	acc := &pageAccumulator{}
	pc.accs = append(pc.accs, acc)
	pc.current = len(pc.accs) - 1
	return acc
}

func (pc *pageCollector) curr() *pageAccumulator {
	if len(pc.accs) == 0 {
		return pc.newPage()
	}
	return pc.accs[pc.current]
}

func (pc *pageCollector) SetStyle(style Style) { pc.style = style }

func (pc *pageCollector) DrawString(x, y float64, text string) error {
	acc := pc.curr()
	acc.texts = append(acc.texts, TextBox{
		Content:  text,
		X:        x,
		Y:        y,
		Font:     pc.style.Font,
		FontSize: pc.style.Size,
	})
	return nil
}

func (pc *pageCollector) NewPage() error {
	pc.newPage()
	return nil
}

func (pc *pageCollector) pages() []Page {
	out := make([]Page, len(pc.accs))
	for i, acc := range pc.accs {
		out[i] = Page{
			Width:  pc.geometry.Width,
			Height: pc.geometry.Height,
			Margin: pc.geometry.Margin,
			Texts:  acc.texts,
		}
	}
	return out
}
