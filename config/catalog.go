package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"SahaayGo/models"
)

// Catalog 技巧目录，启动时加载一次，运行期间只读
var Catalog []models.CopingTool

type catalogFile struct {
	Tools []models.CopingTool `yaml:"tools"`
}

// InitCatalog 加载技巧目录到全局变量
func InitCatalog(config Config) error {
	tools, err := LoadCatalog(config.CatalogPath)
	if err != nil {
		return err
	}
	Catalog = tools
	return nil
}

// LoadCatalog 从 YAML 文件读取技巧目录并逐条校验
func LoadCatalog(path string) ([]models.CopingTool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取技巧目录失败: %v", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("解析技巧目录失败: %v", err)
	}
	if len(file.Tools) == 0 {
		return nil, fmt.Errorf("技巧目录为空: %s", path)
	}

	seen := make(map[string]bool)
	for i, tool := range file.Tools {
		if err := validateTool(tool); err != nil {
			return nil, fmt.Errorf("技巧目录第 %d 条非法: %v", i+1, err)
		}
		if seen[tool.ID] {
			return nil, fmt.Errorf("技巧目录存在重复 id: %s", tool.ID)
		}
		seen[tool.ID] = true
	}

	return file.Tools, nil
}

func validateTool(tool models.CopingTool) error {
	if tool.ID == "" || tool.Title == "" {
		return fmt.Errorf("id 和 title 不能为空")
	}
	if _, err := models.ParseCategory(string(tool.Category)); err != nil {
		return err
	}
	if _, err := models.ParseIntensityLevel(string(tool.IntensityLevel)); err != nil {
		return err
	}
	if tool.DurationMinutes <= 0 {
		return fmt.Errorf("durationMinutes 必须大于 0: %s", tool.ID)
	}
	for _, m := range tool.SupportedMoods {
		if _, err := models.ParseMood(string(m)); err != nil {
			return err
		}
	}
	return nil
}
