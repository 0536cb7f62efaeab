package fonts

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// EmbedPrefix 标记内置字体来源，例如 "embed:go-bold"。
const EmbedPrefix = "embed:"

var builtin = map[string][]byte{
	"go-regular": goregular.TTF,
	"go-bold":    gobold.TTF,
	"go-italic":  goitalic.TTF,
}

// IsEmbedded 判断字体来源是否指向内置字体。
func IsEmbedded(src string) bool {
	return strings.HasPrefix(src, EmbedPrefix)
}

// Load 返回内置字体的字节数据，name 可写为 "embed:go-regular" 或直接 "go-regular"。
func Load(name string) ([]byte, error) {
	key := strings.ToLower(strings.TrimPrefix(name, EmbedPrefix))
	data, ok := builtin[key]
	if !ok {
		return nil, fmt.Errorf("未知的内置字体 %s（可选：%s）", name, strings.Join(Names(), ", "))
	}
	return data, nil
}

// Names 返回全部内置字体名称。
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
