package layout

import "math"

// minLabelWidth 为 EmitBeside 中标签占用的最小宽度。
const minLabelWidth = 80.0

// Cursor 跟踪某一栏内的纵向位置，负责折行绘制与换页。
// y 只会因绘制与 Advance 单调减小，换页时重置为 Geometry.Top()。
// 同一 Canvas 上的多个 Cursor 各自独立换页，互不重置对方的位置。
type Cursor struct {
	column     Column
	y          float64
	top        float64
	bottom     float64
	leading    float64
	canvas     Canvas
	typesetter Typesetter
	breaks     int
}

// NewCursor 创建位于 column、起始基线为 y 的光标。
func NewCursor(canvas Canvas, ts Typesetter, g Geometry, column Column, y, leading float64) *Cursor {
	return &Cursor{
		column:     column,
		y:          y,
		top:        g.Top(),
		bottom:     g.Bottom(),
		leading:    leading,
		canvas:     canvas,
		typesetter: ts,
	}
}

// Y 返回下一行的基线位置。
func (c *Cursor) Y() float64 { return c.y }

// Breaks 返回该光标触发的换页次数。
func (c *Cursor) Breaks() int { return c.breaks }

// Advance 直接下移 amount，不绘制也不换页；是否换页留到下一次 Emit 判断。
func (c *Cursor) Advance(amount float64) { c.y -= amount }

// Emit 在整栏宽度内折行绘制 text。
func (c *Cursor) Emit(text string, style Style, indent float64) error {
	return c.EmitWidth(text, style, indent, c.column.Width)
}

// EmitWidth 以 maxWidth-indent 为行宽折行绘制 text。
// 每一行绘制前检查光标是否已低于下边距，是则先换页、重置光标并重新应用样式。
func (c *Cursor) EmitWidth(text string, style Style, indent, maxWidth float64) error {
	if text == "" || maxWidth-indent <= 0 {
		return nil
	}
	lines, err := c.typesetter.WrapLines(text, style, maxWidth-indent)
	if err != nil {
		return NewBackendError("wrap", err)
	}
	c.canvas.SetStyle(style)
	for _, line := range lines {
		if err := c.drawLine(c.column.X+indent, line, style); err != nil {
			return err
		}
		c.y -= c.leading
	}
	return nil
}

// EmitBeside 在同一基线上绘制标签与折行后的 text，text 的后续行与首行左对齐。
func (c *Cursor) EmitBeside(label string, labelStyle Style, text string, style Style, indent, gap float64) error {
	labelWidth, err := c.typesetter.TextWidth(label, labelStyle)
	if err != nil {
		return NewBackendError("measure", err)
	}
	offset := indent + math.Max(minLabelWidth, labelWidth+gap)
	lines, err := c.typesetter.WrapLines(text, style, c.column.Width-offset)
	if err != nil {
		return NewBackendError("wrap", err)
	}

	c.canvas.SetStyle(labelStyle)
	if err := c.drawLine(c.column.X+indent, label, labelStyle); err != nil {
		return err
	}
	c.canvas.SetStyle(style)
	for i, line := range lines {
		if i > 0 {
			c.y -= c.leading
			if err := c.drawLine(c.column.X+offset, line, style); err != nil {
				return err
			}
			continue
		}
		if err := c.canvas.DrawString(c.column.X+offset, c.y, line); err != nil {
			return NewBackendError("draw", err)
		}
	}
	c.y -= c.leading
	return nil
}

func (c *Cursor) drawLine(x float64, line string, style Style) error {
	if c.y < c.bottom {
		if err := c.pageBreak(style); err != nil {
			return err
		}
	}
	if err := c.canvas.DrawString(x, c.y, line); err != nil {
		return NewBackendError("draw", err)
	}
	return nil
}

func (c *Cursor) pageBreak(style Style) error {
	if err := c.canvas.NewPage(); err != nil {
		return NewBackendError("new page", err)
	}
	c.breaks++
	c.y = c.top
	c.canvas.SetStyle(style)
	return nil
}
