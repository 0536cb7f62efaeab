package layout

import (
	"strings"

	"github.com/ByLCY/cvpress/resume"
)

// 单栏模板的缩进。
const (
	singleSmallIndent = 20.0
	singleLargeIndent = 40.0
	// 技能分类名与技能列表之间的最小间隔。
	labelGap = 6.0
)

// SingleColumn 在整页宽度内依次排版抬头、Summary、Experience、Skills 与 Education。
type SingleColumn struct{}

// Name 实现 Template。
func (SingleColumn) Name() string { return SingleColumnName }

// Compose 实现 Template。
func (SingleColumn) Compose(doc *Document, r *resume.Resume) error {
	full := doc.Geometry.FullColumn()
	c := doc.NewCursor(full, doc.Geometry.Top())
	body := doc.Config.BodySize()

	if err := header(c, r, body, full.Width); err != nil {
		return err
	}
	if err := summary(c, r, body); err != nil {
		return err
	}
	if err := experience(c, r.Experience, jobStyle{
		body:      body,
		small:     singleSmallIndent,
		large:     singleLargeIndent,
		before:    JobSpacing,
		after:     SectionSpacing,
		keyIndent: singleSmallIndent,
		keyGap:    doc.Config.Leading(),
	}); err != nil {
		return err
	}
	if err := singleSkills(c, r.Skills, body, doc.Config.Leading()); err != nil {
		return err
	}
	return singleEducation(c, r.Education, body, doc.Config.Leading())
}

func singleSkills(c *Cursor, skills resume.Skill, body, leading float64) error {
	if err := heading(c, "Skills", FontSectionTitle); err != nil {
		return err
	}
	if len(skills.ManagementSkills) > 0 {
		if err := c.Emit("Management Skills:", Bold(body), 0); err != nil {
			return err
		}
		if err := c.Emit(strings.Join(skills.ManagementSkills, ", "), Regular(body), singleSmallIndent); err != nil {
			return err
		}
	}
	if len(skills.TechnicalSkills) == 0 {
		return nil
	}
	c.Advance(leading)
	if err := c.Emit("Technical Skills:", Bold(body), 0); err != nil {
		return err
	}
	for _, cat := range skills.TechnicalSkills {
		if err := c.EmitBeside(cat.Name+":", Bold(body), strings.Join(cat.Items, ", "), Regular(body), singleSmallIndent, labelGap); err != nil {
			return err
		}
	}
	return nil
}

func singleEducation(c *Cursor, entries []resume.Education, body, leading float64) error {
	if err := heading(c, "Education", FontSectionTitle); err != nil {
		return err
	}
	for _, edu := range entries {
		if err := c.Emit(edu.Institution, Bold(body), 0); err != nil {
			return err
		}
		if err := c.Emit(degreeLine(edu), Regular(body), singleSmallIndent); err != nil {
			return err
		}
		c.Advance(leading)
	}
	return nil
}
