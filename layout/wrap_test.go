package layout

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

// 每个字符宽 1。
func runeWidth(s string) float64 { return float64(utf8.RuneCountInString(s)) }

func TestGreedyWrap(t *testing.T) {
	tests := []struct {
		name    string
		content string
		limit   float64
		want    []string
	}{
		{name: "empty", content: "", limit: 10, want: nil},
		{name: "fits", content: "hello world", limit: 20, want: []string{"hello world"}},
		{name: "breaks at space", content: "hello world again", limit: 11, want: []string{"hello world", "again"}},
		{name: "collapses leading space", content: "   lead in", limit: 4, want: []string{"lead", "in"}},
		{name: "explicit newline", content: "a\nb", limit: 10, want: []string{"a", "b"}},
		{name: "blank line kept", content: "a\n\nb", limit: 10, want: []string{"a", "", "b"}},
		{name: "long word split", content: "abcdefghij xy", limit: 4, want: []string{"abcd", "efgh", "ij", "xy"}},
		{name: "long word joins tail", content: "abcdef g", limit: 4, want: []string{"abcd", "ef g"}},
		{name: "non-positive limit", content: "one two three", limit: 0, want: []string{"one two three"}},
		{name: "multibyte", content: "简历 排版 引擎", limit: 5, want: []string{"简历 排版", "引擎"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GreedyWrap(tt.content, tt.limit, runeWidth))
		})
	}
}

func TestGreedyWrapPreservesWords(t *testing.T) {
	content := "Designed and shipped a distributed cache that reduced p99 latency by forty percent"
	lines := GreedyWrap(content, 25, runeWidth)
	for _, line := range lines {
		assert.LessOrEqual(t, runeWidth(line), 25.0, line)
	}
	joined := ""
	for i, line := range lines {
		if i > 0 {
			joined += " "
		}
		joined += line
	}
	assert.Equal(t, content, joined)
}
