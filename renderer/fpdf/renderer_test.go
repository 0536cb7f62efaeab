package fpdfrenderer

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/cvpress/fonts"
	"github.com/ByLCY/cvpress/layout"
	"github.com/ByLCY/cvpress/resume"
)

var pinned = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func TestTextWidthCoreFonts(t *testing.T) {
	r := NewRenderer(Options{})

	w, err := r.TextWidth("Hello", layout.Regular(10))
	require.NoError(t, err)
	assert.InDelta(t, 22.78, w, 1e-6)

	w, err = r.TextWidth("Hello", layout.Bold(10))
	require.NoError(t, err)
	assert.InDelta(t, 24.45, w, 1e-6)

	// 项目符号经 cp1252 转换后按 Helvetica 宽度计算
	w, err = r.TextWidth("•", layout.Regular(10))
	require.NoError(t, err)
	assert.InDelta(t, 3.5, w, 1e-6)
}

func TestWrapLines(t *testing.T) {
	r := NewRenderer(Options{})

	lines, err := r.WrapLines("Hello Hello Hello", layout.Regular(10), 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello Hello", "Hello"}, lines)

	lines, err = r.WrapLines("", layout.Regular(10), 50)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func buildResult(t *testing.T, r layout.Typesetter, name string) *layout.Result {
	t.Helper()
	res := &resume.Resume{
		Name:     "Ada",
		Headline: "Engineer",
		Summary:  []string{"Builds analytical engines"},
		Experience: []resume.Experience{{
			CompanyName: "C", Title: "T", Date: "2020",
			Description: []resume.Description{resume.NewBullet("did X")},
		}},
	}
	for i := 0; i < 70; i++ {
		res.Summary = append(res.Summary, "more")
	}
	tmpl, err := layout.TemplateFor(name)
	require.NoError(t, err)
	result, err := layout.Build(res, tmpl, layout.BuildOptions{
		Typesetter: r,
		Config:     layout.Preset(name),
		Meta:       layout.DefaultMeta(),
		Bindings:   res.Bindings(),
	})
	require.NoError(t, err)
	return result
}

func TestRenderIsDeterministic(t *testing.T) {
	for _, name := range layout.TemplateNames() {
		r := NewRenderer(Options{CreationDate: pinned})
		result := buildResult(t, r, name)
		require.Len(t, result.Pages, 2, name)

		first, err := r.Render(result)
		require.NoError(t, err)
		second, err := NewRenderer(Options{CreationDate: pinned}).Render(result)
		require.NoError(t, err)

		assert.True(t, bytes.HasPrefix(first, []byte("%PDF-")))
		assert.Equal(t, first, second, name)
		assert.Contains(t, string(first), "(Ada) Tj")
		assert.Contains(t, string(first), "C - T \\(2020\\)")
	}
}

func TestRenderWithTrueTypeFonts(t *testing.T) {
	bold, err := fonts.Load("embed:go-bold")
	require.NoError(t, err)
	r := NewRenderer(Options{CreationDate: pinned, Fonts: map[layout.FontStyle][]byte{layout.FontBold: bold}})

	w, err := r.TextWidth("简历 • Résumé", layout.Regular(10))
	require.NoError(t, err)
	assert.Positive(t, w)

	data, err := r.Render(buildResult(t, r, layout.SingleColumnName))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRenderErrors(t *testing.T) {
	r := NewRenderer(Options{})

	_, err := r.Render(nil)
	assert.ErrorIs(t, err, layout.ErrRenderBackend)

	_, err = r.Render(&layout.Result{})
	assert.ErrorIs(t, err, layout.ErrRenderBackend)
}
