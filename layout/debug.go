package layout

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
)

// EncodeDebugJSON 以缩进 JSON 输出分页结果，保留 & 与 < 等字符原样。
func EncodeDebugJSON(w io.Writer, res *Result) error {
	if res == nil {
		return errors.New("布局结果为空")
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteDebugJSON 将布局结果写入 path，父目录不存在时自动创建。
func WriteDebugJSON(res *Result, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeDebugJSON(f, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
