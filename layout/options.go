package layout

// BuildOptions 配置布局阶段所需的依赖与参数。
type BuildOptions struct {
	Typesetter Typesetter
	Geometry   Geometry
	Config     Config
	Meta       DocumentMeta
	// Bindings 用于替换 Meta 中的 ${path} 占位符，为空时保持原文。
	Bindings map[string]interface{}
}

// Typesetter 负责文本测量与贪心折行，宽度与字号均为 pt。
type Typesetter interface {
	WrapLines(content string, style Style, maxWidth float64) ([]string, error)
	TextWidth(content string, style Style) (float64, error)
}

// Canvas 是有状态的绘制面：设置当前样式、在 (x, y) 绘制字符串、换新页。
// 序列化由 renderer.Renderer 在布局完成后一次性完成。
type Canvas interface {
	SetStyle(style Style)
	DrawString(x, y float64, text string) error
	NewPage() error
}
