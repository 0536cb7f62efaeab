// Package resume holds the normalized, read-only resume model that layout
// templates render. Values are built once by Parse and never mutated.
package resume

import "strings"

// Resume is the root of the model. Every field defaults to its zero value
// when the input omits it.
type Resume struct {
	Name       string
	Location   string
	Phone      string
	Email      string
	Links      []Link
	Headline   string
	Summary    []string
	Experience []Experience
	Skills     Skill
	Education  []Education
}

// Link is one labelled contact link, kept in input order.
type Link struct {
	Label string
	URL   string
}

// Experience is a single job.
type Experience struct {
	CompanyName  string
	Title        string
	Date         string
	Description  []Description
	Contribution []Contribution
}

// DescriptionKind tags the variant held by a Description.
type DescriptionKind int

const (
	// PlainBullet is a bare string bullet.
	PlainBullet DescriptionKind = iota
	// TitledGroup is a labelled group of points.
	TitledGroup
)

func (k DescriptionKind) String() string {
	switch k {
	case PlainBullet:
		return "bullet"
	case TitledGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Description is one entry of Experience.Description.
// Bullet is set for PlainBullet, Group for TitledGroup.
type Description struct {
	Kind   DescriptionKind
	Bullet string
	Group  Contribution
}

// NewBullet returns a PlainBullet description.
func NewBullet(text string) Description {
	return Description{Kind: PlainBullet, Bullet: text}
}

// NewGroup returns a TitledGroup description.
func NewGroup(c Contribution) Description {
	return Description{Kind: TitledGroup, Group: c}
}

// Contribution is a group of points with an optional title.
// Title is empty when the source entry was a bare string.
type Contribution struct {
	Title  string
	Points []string
}

// HasTitle reports whether the contribution carries a label.
func (c Contribution) HasTitle() bool { return c.Title != "" }

// Skill groups management and technical skills.
type Skill struct {
	ManagementSkills []string
	TechnicalSkills  []SkillCategory
}

// IsEmpty reports whether both skill blocks are empty.
func (s Skill) IsEmpty() bool {
	return len(s.ManagementSkills) == 0 && len(s.TechnicalSkills) == 0
}

// SkillCategory is one technical skills category, kept in input order.
type SkillCategory struct {
	Name  string
	Items []string
}

// Education is one education record.
type Education struct {
	Institution string
	Degree      string
	Year        string
}

// Bindings exposes the scalar fields of the resume as a nested map for
// ${path} interpolation in document metadata.
func (r *Resume) Bindings() map[string]interface{} {
	links := make(map[string]interface{}, len(r.Links))
	for _, l := range r.Links {
		links[strings.ToLower(l.Label)] = l.URL
	}
	return map[string]interface{}{
		"name":     r.Name,
		"location": r.Location,
		"phone":    r.Phone,
		"email":    r.Email,
		"headline": r.Headline,
		"links":    links,
	}
}
