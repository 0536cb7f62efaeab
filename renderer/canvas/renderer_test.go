package canvasrenderer

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/cvpress/fonts"
	"github.com/ByLCY/cvpress/layout"
	"github.com/ByLCY/cvpress/resume"
)

func TestWrapLinesGreedy(t *testing.T) {
	r := NewRenderer(".")

	lines, err := r.WrapLines("hello world again", layout.Regular(12), 40)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "hello world again", strings.Join(lines, " "))
}

func TestWrapLinesHonorsNewlines(t *testing.T) {
	r := NewRenderer(".")

	lines, err := r.WrapLines("foo\n\nbar", layout.Regular(12), 300)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "", "bar"}, lines)
}

func TestWrapLinesWidthLimit(t *testing.T) {
	r := NewRenderer(".")
	style := layout.Bold(12)
	limit := 85.0

	lines, err := r.WrapLines(strings.Repeat("a", 60)+" tail", style, limit)
	require.NoError(t, err)
	require.NotEmpty(t, lines)
	for i, ln := range lines {
		w, err := r.TextWidth(ln, style)
		require.NoError(t, err)
		assert.LessOrEqual(t, w, limit+1e-6, "line %d %q", i, ln)
	}
}

// 首行宽度与行宽恰好相等且后面紧跟显式换行时，不应产生额外的空行。
func TestNoBlankLineWhenEqualWidthThenNewline(t *testing.T) {
	r := NewRenderer(".")
	style := layout.Regular(12)

	first := "SAMPLE-A"
	limit, err := r.TextWidth(first, style)
	require.NoError(t, err)
	require.Positive(t, limit)

	lines, err := r.WrapLines(first+"\nSAMPLE-B", style, limit)
	require.NoError(t, err)
	assert.Equal(t, []string{first, "SAMPLE-B"}, lines)
}

func TestTextWidthScalesWithSize(t *testing.T) {
	r := NewRenderer(".")

	w10, err := r.TextWidth("Experience", layout.Regular(10))
	require.NoError(t, err)
	w20, err := r.TextWidth("Experience", layout.Regular(20))
	require.NoError(t, err)

	assert.Positive(t, w10)
	assert.InEpsilon(t, 2*w10, w20, 1e-3)
	// 10pt 的一个单词不应超过 100pt
	assert.Less(t, w10, 100.0)
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewRenderer(".")
	res := &resume.Resume{Name: "Ada", Summary: []string{"Builds analytical engines"}}
	for i := 0; i < 80; i++ {
		res.Summary = append(res.Summary, "more")
	}
	tmpl, err := layout.TemplateFor(layout.SingleColumnName)
	require.NoError(t, err)
	result, err := layout.Build(res, tmpl, layout.BuildOptions{
		Typesetter: r,
		Config:     layout.Preset(layout.SingleColumnName),
		Meta:       layout.DefaultMeta(),
		Bindings:   res.Bindings(),
	})
	require.NoError(t, err)
	require.Len(t, result.Pages, 2)

	data, err := r.Render(result)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRenderErrors(t *testing.T) {
	r := NewRenderer(".")

	_, err := r.Render(nil)
	assert.ErrorIs(t, err, layout.ErrRenderBackend)

	_, err = r.Render(&layout.Result{})
	assert.ErrorIs(t, err, layout.ErrRenderBackend)
}

func TestFontOverrides(t *testing.T) {
	bold, err := fonts.Load("go-bold")
	require.NoError(t, err)

	// 以粗体覆盖正文字体后，两种样式的宽度一致
	r := NewRendererWithOptions(Options{Fonts: map[layout.FontStyle]Resource{
		layout.FontRegular: {Bytes: bold},
	}})
	regular, err := r.TextWidth("Key Contributions", layout.Regular(10))
	require.NoError(t, err)
	boldWidth, err := r.TextWidth("Key Contributions", layout.Bold(10))
	require.NoError(t, err)
	assert.InDelta(t, boldWidth, regular, 1e-9)

	missing := NewRendererWithOptions(Options{
		BaseDir: t.TempDir(),
		Fonts:   map[layout.FontStyle]Resource{layout.FontItalic: {Path: filepath.Join("fonts", "missing.ttf")}},
	})
	_, err = missing.TextWidth("x", layout.Regular(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, layout.ErrRenderBackend)
}
