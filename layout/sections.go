package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/ByLCY/cvpress/resume"
)

const bullet = "• "

// jobStyle 描述经历条目在某个模板中的间距与缩进。
type jobStyle struct {
	body      float64
	small     float64 // 分组标题缩进
	large     float64 // 分组要点缩进
	before    float64
	after     float64
	keyIndent float64
	keyGap    float64
}

// heading 先留出段间距，再绘制粗体标题。
func heading(c *Cursor, title string, size float64) error {
	c.Advance(SectionSpacing)
	return c.Emit(title, Bold(size), 0)
}

// header 绘制姓名、头衔、联系方式与链接，文本宽度限制为 width。
func header(c *Cursor, r *resume.Resume, body, width float64) error {
	start := c.Y()
	if err := c.EmitWidth(r.Name, Bold(FontHeader), 0, width); err != nil {
		return err
	}
	if used := start - c.Y(); used >= 0 && used < SectionSpacing {
		c.Advance(SectionSpacing - used)
	}
	if err := c.EmitWidth(r.Headline, Regular(FontJobTitle), 0, width); err != nil {
		return err
	}
	if err := c.EmitWidth(contactLine(r), Regular(body), 0, width); err != nil {
		return err
	}
	for _, link := range r.Links {
		if err := c.EmitWidth(capitalize(link.Label)+": "+link.URL, Italic(body), 0, width); err != nil {
			return err
		}
	}
	return nil
}

func summary(c *Cursor, r *resume.Resume, body float64) error {
	if err := heading(c, "Summary", FontSectionTitle); err != nil {
		return err
	}
	for _, line := range r.Summary {
		if err := c.Emit(bullet+line, Regular(body), 0); err != nil {
			return err
		}
	}
	return nil
}

func experience(c *Cursor, jobs []resume.Experience, st jobStyle) error {
	if err := heading(c, "Experience", FontSectionTitle); err != nil {
		return err
	}
	for _, job := range jobs {
		if err := renderJob(c, job, st); err != nil {
			return err
		}
	}
	return nil
}

func renderJob(c *Cursor, job resume.Experience, st jobStyle) error {
	c.Advance(st.before)
	if err := c.Emit(jobLine(job), Bold(st.body), 0); err != nil {
		return err
	}
	for _, desc := range job.Description {
		var err error
		switch desc.Kind {
		case resume.TitledGroup:
			err = renderContribution(c, desc.Group, st)
		default:
			err = c.Emit(bullet+desc.Bullet, Regular(st.body), 0)
		}
		if err != nil {
			return err
		}
	}
	if len(job.Contribution) > 0 {
		c.Advance(st.keyGap)
		if err := c.Emit("Key Contributions:", Bold(st.body), st.keyIndent); err != nil {
			return err
		}
		for _, contrib := range job.Contribution {
			if err := renderContribution(c, contrib, st); err != nil {
				return err
			}
		}
	}
	c.Advance(st.after)
	return nil
}

func renderContribution(c *Cursor, contrib resume.Contribution, st jobStyle) error {
	if contrib.HasTitle() {
		if err := c.Emit(contrib.Title+":", Bold(st.body), st.small); err != nil {
			return err
		}
	}
	for _, point := range contrib.Points {
		if err := c.Emit(bullet+point, Regular(st.body), st.large); err != nil {
			return err
		}
	}
	return nil
}

func jobLine(job resume.Experience) string {
	return job.CompanyName + " - " + job.Title + " (" + job.Date + ")"
}

func degreeLine(edu resume.Education) string {
	return edu.Degree + " (" + edu.Year + ")"
}

// contactLine 以 " | " 连接非空的所在地、电话与邮箱。
func contactLine(r *resume.Resume) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{r.Location, r.Phone, r.Email} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}

// capitalize 首字母大写、其余小写。
func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(first)) + strings.ToLower(s[size:])
}
