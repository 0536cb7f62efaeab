package renderer

import "github.com/ByLCY/cvpress/layout"

// Renderer 将分页后的布局结果序列化为 PDF。
// Render 在布局完成后只调用一次，返回完整的文件内容。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
