package resume

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// Parse validates data against the resume schema and builds a Resume.
// Object key order is preserved for links and technical skill categories.
func Parse(data []byte) (*Resume, error) {
	if !gjson.ValidBytes(data) {
		return nil, malformed("(root)", "input is not valid JSON")
	}
	if err := validate(data); err != nil {
		return nil, err
	}

	root := gjson.ParseBytes(data)
	r := &Resume{
		Name:     text(root.Get("name")),
		Location: text(root.Get("location")),
		Phone:    text(root.Get("phone")),
		Email:    text(root.Get("email")),
		Headline: text(root.Get("headline")),
		Summary:  textList(root.Get("summary")),
		Links:    links(root.Get("links")),
		Skills:   skills(root.Get("skills")),
	}

	each(root.Get("experience"), func(_, v gjson.Result) bool {
		r.Experience = append(r.Experience, experience(v))
		return true
	})
	each(root.Get("education"), func(_, v gjson.Result) bool {
		r.Education = append(r.Education, Education{
			Institution: text(v.Get("institution")),
			Degree:      text(v.Get("degree")),
			Year:        text(v.Get("year")),
		})
		return true
	})
	return r, nil
}

func validate(data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load resume schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return malformed("(root)", err.Error())
	}
	if result.Valid() {
		return nil
	}
	out := &MalformedInputError{Problems: make([]Problem, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		out.Problems = append(out.Problems, Problem{Field: field, Message: desc.Description()})
	}
	return out
}

func experience(v gjson.Result) Experience {
	exp := Experience{
		CompanyName: text(v.Get("company_name")),
		Title:       text(v.Get("title")),
		Date:        text(v.Get("date")),
	}
	each(v.Get("description"), func(_, entry gjson.Result) bool {
		if entry.IsObject() {
			exp.Description = append(exp.Description, NewGroup(contribution(entry)))
		} else {
			exp.Description = append(exp.Description, NewBullet(text(entry)))
		}
		return true
	})
	each(v.Get("contribution"), func(_, entry gjson.Result) bool {
		exp.Contribution = append(exp.Contribution, contribution(entry))
		return true
	})
	return exp
}

// contribution turns a single-key group into a titled Contribution and any
// scalar into a title-less Contribution with one point.
func contribution(v gjson.Result) Contribution {
	if !v.IsObject() {
		return Contribution{Points: []string{text(v)}}
	}
	var c Contribution
	v.ForEach(func(key, value gjson.Result) bool {
		c.Title = key.String()
		if value.IsArray() {
			c.Points = textList(value)
		} else {
			c.Points = []string{text(value)}
		}
		return false
	})
	return c
}

func skills(v gjson.Result) Skill {
	s := Skill{ManagementSkills: textList(v.Get("management_skills"))}
	each(v.Get("technical_skills"), func(key, items gjson.Result) bool {
		s.TechnicalSkills = append(s.TechnicalSkills, SkillCategory{
			Name:  key.String(),
			Items: textList(items),
		})
		return true
	})
	return s
}

func links(v gjson.Result) []Link {
	var out []Link
	each(v, func(key, value gjson.Result) bool {
		out = append(out, Link{Label: key.String(), URL: text(value)})
		return true
	})
	return out
}

func textList(v gjson.Result) []string {
	var out []string
	each(v, func(_, item gjson.Result) bool {
		out = append(out, text(item))
		return true
	})
	return out
}

// each iterates arrays and objects only; null and scalars yield nothing.
func each(v gjson.Result, fn func(key, value gjson.Result) bool) {
	if v.IsArray() || v.IsObject() {
		v.ForEach(fn)
	}
}

// text renders a scalar; null and missing values become "".
func text(v gjson.Result) string {
	if !v.Exists() || v.Type == gjson.Null {
		return ""
	}
	return v.String()
}
