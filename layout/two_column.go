package layout

import (
	"strings"

	"github.com/ByLCY/cvpress/resume"
)

// 双栏模板的缩进。
const (
	twoSmallIndent = 10.0
	twoLargeIndent = 20.0
)

// TwoColumn 先在左栏宽度内排版抬头，整宽排版 Summary，
// 随后左栏排版 Experience，右栏排版 Education 与 Skills。
//
// 两栏各自持有光标：任一栏换页都会让共享的 Canvas 翻到新页，
// 另一栏的光标位置保持不变，后续内容绘制在当前页上。
type TwoColumn struct{}

// Name 实现 Template。
func (TwoColumn) Name() string { return TwoColumnName }

// Compose 实现 Template。
func (TwoColumn) Compose(doc *Document, r *resume.Resume) error {
	g := doc.Geometry
	gap := doc.Config.Gap()
	body := doc.Config.BodySize()
	left, right := Columns(g, gap)

	meta := doc.NewCursor(g.FullColumn(), g.Top())
	if err := header(meta, r, body, left.Width); err != nil {
		return err
	}
	// Summary 起始于抬头之后，避免长头衔或多条链接与其重叠。
	if err := summary(meta, r, body); err != nil {
		return err
	}

	start := meta.Y() - gap
	side := doc.NewCursor(right, start)
	if err := twoEducation(side, r.Education, doc.Config.EducationFontSize()); err != nil {
		return err
	}
	side.Advance(gap)
	if err := twoSkills(side, r.Skills, body); err != nil {
		return err
	}

	primary := doc.NewCursor(left, start)
	return experience(primary, r.Experience, jobStyle{
		body:   body,
		small:  twoSmallIndent,
		large:  twoLargeIndent,
		before: SectionSpacing,
		keyGap: doc.Config.Leading(),
	})
}

func twoEducation(c *Cursor, entries []resume.Education, size float64) error {
	if err := heading(c, "Education", FontJobTitle); err != nil {
		return err
	}
	for _, edu := range entries {
		if err := c.Emit(edu.Institution, Bold(size), 0); err != nil {
			return err
		}
		if err := c.Emit(degreeLine(edu), Regular(size), twoSmallIndent); err != nil {
			return err
		}
	}
	return nil
}

func twoSkills(c *Cursor, skills resume.Skill, body float64) error {
	if err := heading(c, "Skills", FontJobTitle); err != nil {
		return err
	}
	if len(skills.ManagementSkills) > 0 {
		if err := c.Emit("Management Skills:", Bold(body), 0); err != nil {
			return err
		}
		if err := c.Emit(strings.Join(skills.ManagementSkills, ", "), Regular(body), twoSmallIndent); err != nil {
			return err
		}
	}
	if len(skills.TechnicalSkills) == 0 {
		return nil
	}
	if err := c.Emit("Technical Skills:", Bold(body), 0); err != nil {
		return err
	}
	for _, cat := range skills.TechnicalSkills {
		if err := c.Emit(cat.Name+":", Bold(body), twoSmallIndent); err != nil {
			return err
		}
		if err := c.Emit(strings.Join(cat.Items, ", "), Regular(body), twoLargeIndent); err != nil {
			return err
		}
	}
	return nil
}
