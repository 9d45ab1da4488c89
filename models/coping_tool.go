package models

import "fmt"

// CopingCategory 调节技巧分类
type CopingCategory string

const (
	CategoryBreathing  CopingCategory = "breathing"
	CategoryGrounding  CopingCategory = "grounding"
	CategoryCognitive  CopingCategory = "cognitive"
	CategoryMovement   CopingCategory = "movement"
	CategoryReflection CopingCategory = "reflection"
)

// AllCategories 全部合法的分类取值
var AllCategories = []CopingCategory{
	CategoryBreathing,
	CategoryGrounding,
	CategoryCognitive,
	CategoryMovement,
	CategoryReflection,
}

// ParseCategory 校验并转换分类字符串
func ParseCategory(s string) (CopingCategory, error) {
	for _, c := range AllCategories {
		if CopingCategory(s) == c {
			return c, nil
		}
	}
	return "", fmt.Errorf("无效的技巧分类: %q", s)
}

// IntensityLevel 技巧强度等级，描述认知或身体负荷
type IntensityLevel string

const (
	IntensityLow    IntensityLevel = "low"
	IntensityMedium IntensityLevel = "medium"
	IntensityHigh   IntensityLevel = "high"
)

// ParseIntensityLevel 校验并转换强度等级字符串
func ParseIntensityLevel(s string) (IntensityLevel, error) {
	switch IntensityLevel(s) {
	case IntensityLow, IntensityMedium, IntensityHigh:
		return IntensityLevel(s), nil
	}
	return "", fmt.Errorf("无效的强度等级: %q", s)
}

// CopingTool 调节技巧目录条目，由配置文件提供，引擎运行期间不可变
type CopingTool struct {
	ID              string         `yaml:"id" json:"id"`
	Title           string         `yaml:"title" json:"title"`
	Description     string         `yaml:"description" json:"description"`
	Category        CopingCategory `yaml:"category" json:"category"`
	SupportedMoods  []Mood         `yaml:"supportedMoods" json:"supportedMoods"`
	IntensityLevel  IntensityLevel `yaml:"intensityLevel" json:"intensityLevel"`
	DurationMinutes int            `yaml:"durationMinutes" json:"durationMinutes"`
}

// SupportsMood 判断技巧是否适配给定心情
func (t CopingTool) SupportsMood(m Mood) bool {
	for _, sm := range t.SupportedMoods {
		if sm == m {
			return true
		}
	}
	return false
}
