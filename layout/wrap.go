package layout

import (
	"math"
	"strings"
	"unicode"
)

// GreedyWrap 在空白处贪心折行，使每行宽度不超过 limit（pt）。
// 单个词超过 limit 时按字符拆分；显式换行符总是开始新行；空串返回 nil。
// measure 返回字符串在目标字体下的宽度，由各渲染后端提供。
func GreedyWrap(content string, limit float64, measure func(string) float64) []string {
	if content == "" {
		return nil
	}
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	var (
		lines []string
		line  string
		gap   string
	)
	flush := func() {
		lines = append(lines, line)
		line, gap = "", ""
	}

	for _, token := range tokenizeContent(content) {
		if token == "\n" {
			flush()
			continue
		}
		if isSpaceToken(token) {
			// 行首空白丢弃，词间空白只在下一个词放得下时保留
			if line != "" {
				gap = token
			}
			continue
		}
		if line != "" {
			if measure(line+gap+token) <= limit {
				line += gap + token
				gap = ""
				continue
			}
			flush()
		}
		if measure(token) <= limit {
			line = token
			continue
		}
		chunks := splitTokenByWidth(token, limit, measure)
		lines = append(lines, chunks[:len(chunks)-1]...)
		line = chunks[len(chunks)-1]
	}
	if line != "" {
		flush()
	}
	return lines
}

func isSpaceToken(token string) bool {
	for _, r := range token {
		return unicode.IsSpace(r)
	}
	return false
}

func tokenizeContent(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}

	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			lastWasSpace = false
			continue
		}
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

func splitTokenByWidth(token string, limit float64, measure func(string) float64) []string {
	var parts []string
	var runes []rune
	for _, r := range token {
		runes = append(runes, r)
		if len(runes) > 1 && measure(string(runes)) > limit {
			parts = append(parts, string(runes[:len(runes)-1]))
			runes = runes[len(runes)-1:]
		}
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}
