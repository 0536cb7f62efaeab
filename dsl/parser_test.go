package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/cvpress/dsl"
)

const sampleProfile = `
// compact two-column variant
profile Compact v1 {
  meta {
    title: "${name} - Resume"
    keywords: [
      "resume"
      "engineering"
    ]
  }

  page a4 landscape margin 40pt 50pt { }

  layout two_column {
    education_size: 9pt
    line_height: 1.1x
    column_gap: 24pt
  }

  # fonts are optional
  fonts {
    regular: "fonts/Inter-Regular.ttf"; bold: embed
  }
}
`

func TestParseProfile(t *testing.T) {
	doc, err := dsl.ParseString(sampleProfile)
	require.NoError(t, err)

	assert.Equal(t, "Compact", doc.Name)
	assert.Equal(t, "v1", doc.Version)
	require.Len(t, doc.Sections, 4)

	kinds := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		kinds = append(kinds, s.Kind())
	}
	assert.Equal(t, []string{"meta", "page", "layout", "fonts"}, kinds)

	meta := doc.Sections[0].Meta
	require.NotNil(t, meta)
	title := meta.Block.Lookup("title")
	require.NotNil(t, title)
	assert.Equal(t, "${name} - Resume", title.Value.Text())
	keywords := meta.Block.Lookup("keywords")
	require.NotNil(t, keywords)
	require.NotNil(t, keywords.Value.Array)
	assert.Equal(t, []string{"resume", "engineering"}, keywords.Value.Strings())

	page := doc.Sections[1].Page
	require.NotNil(t, page)
	assert.Equal(t, "a4", page.Spec.Size)
	params := make([]string, 0, len(page.Spec.Params))
	for _, p := range page.Spec.Params {
		params = append(params, p.Value)
	}
	assert.Equal(t, []string{"landscape", "margin", "40pt", "50pt"}, params)
	assert.Equal(t, "Number", page.Spec.Params[2].Type)
	require.NotNil(t, page.Block)
	assert.Empty(t, page.Block.Assignments)

	layoutSection := doc.Sections[2].Layout
	require.NotNil(t, layoutSection)
	assert.Equal(t, "two_column", layoutSection.Name)
	assert.Equal(t, "9pt", layoutSection.Block.Lookup("education_size").Value.Text())
	assert.Equal(t, "1.1x", layoutSection.Block.Lookup("line_height").Value.Text())
	assert.Nil(t, layoutSection.Block.Lookup("font_body"))

	fonts := doc.Sections[3].Fonts
	require.NotNil(t, fonts)
	assert.Equal(t, "fonts/Inter-Regular.ttf", fonts.Block.Lookup("regular").Value.Text())
	bold := fonts.Block.Lookup("bold")
	require.NotNil(t, bold)
	require.NotNil(t, bold.Value.Ident)
	assert.Equal(t, "embed", bold.Value.Text())
}

func TestParsePageWithoutBlock(t *testing.T) {
	doc, err := dsl.ParseString("profile Plain v1 {\n  page letter\n}\n")
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)

	page := doc.Sections[0].Page
	require.NotNil(t, page)
	assert.Equal(t, "letter", page.Spec.Size)
	assert.Empty(t, page.Spec.Params)
	assert.Nil(t, page.Block)
}

func TestLookupKeepsLastAssignment(t *testing.T) {
	doc, err := dsl.ParseString(`profile P v1 { layout base { font_body: 10pt; font_body: 11pt } }`)
	require.NoError(t, err)

	a := doc.Sections[0].Layout.Block.Lookup("font_body")
	require.NotNil(t, a)
	assert.Equal(t, "11pt", a.Value.Text())
}

func TestParseRejectsUnknownSection(t *testing.T) {
	_, err := dsl.ParseString(`profile P v1 { flow { } }`)
	require.Error(t, err)

	_, err = dsl.ParseString(`doc P v1 { }`)
	require.Error(t, err)
}
