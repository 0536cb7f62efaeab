package layout

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config 保存模板可覆盖的排版参数，零值表示未设置并回退到默认值。
type Config struct {
	FontBody      float64 `json:"font_body,omitempty" validate:"omitempty,gt=0,lte=72"`
	LineHeight    float64 `json:"line_height,omitempty" validate:"omitempty,gt=0,lte=144"`
	EducationSize float64 `json:"education_size,omitempty" validate:"omitempty,gt=0,lte=72"`
	ColumnGap     float64 `json:"column_gap,omitempty" validate:"omitempty,gt=0,lte=288"`
	// LineHeightFactor 以正文字号的倍数指定行高，LineHeight 优先。
	LineHeightFactor float64 `json:"line_height_factor,omitempty" validate:"omitempty,gt=0,lte=5"`
}

// Preset 返回命令行入口为各模板预置的参数。
func Preset(template string) Config {
	switch template {
	case TwoColumnName:
		return Config{EducationSize: 10, LineHeight: 11}
	case SingleColumnName:
		return Config{FontBody: 10}
	default:
		return Config{}
	}
}

// Merge 用 o 中已设置的字段覆盖 c。
func (c Config) Merge(o Config) Config {
	if o.FontBody > 0 {
		c.FontBody = o.FontBody
	}
	if o.LineHeight > 0 {
		c.LineHeight = o.LineHeight
		c.LineHeightFactor = 0
	}
	if o.LineHeightFactor > 0 {
		c.LineHeightFactor = o.LineHeightFactor
		c.LineHeight = 0
	}
	if o.EducationSize > 0 {
		c.EducationSize = o.EducationSize
	}
	if o.ColumnGap > 0 {
		c.ColumnGap = o.ColumnGap
	}
	return c
}

// BodySize 返回正文字号。
func (c Config) BodySize() float64 {
	if c.FontBody > 0 {
		return c.FontBody
	}
	return FontBody
}

// Leading 返回每一折行后光标下移的距离。
func (c Config) Leading() float64 {
	switch {
	case c.LineHeight > 0:
		return c.LineHeight
	case c.LineHeightFactor > 0:
		return c.LineHeightFactor * c.BodySize()
	default:
		return DefaultLineHeight
	}
}

// EducationFontSize 返回教育经历条目的字号，未设置时与正文一致。
func (c Config) EducationFontSize() float64 {
	if c.EducationSize > 0 {
		return c.EducationSize
	}
	return c.BodySize()
}

// Gap 返回双栏之间的间距。
func (c Config) Gap() float64 {
	if c.ColumnGap > 0 {
		return c.ColumnGap
	}
	return DefaultColumnGap
}

// Validate 校验各字段取值范围。
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
