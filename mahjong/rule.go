package mahjong

import (
	"fmt"

	"github.com/spf13/viper"
)

// Rule 参与判定的和了形
type Rule struct {
	SevenPairs      bool `yaml:"seven_pairs"`      // 七对子
	ThirteenOrphans bool `yaml:"thirteen_orphans"` // 国士无双
}

func DefaultRule() Rule {
	return Rule{SevenPairs: true, ThirteenOrphans: true}
}

// LoadRule 从viper读取, 前缀为 rule, 缺省项取 DefaultRule
func LoadRule(v *viper.Viper) Rule {
	def := DefaultRule()
	v.SetDefault("rule.seven_pairs", def.SevenPairs)
	v.SetDefault("rule.thirteen_orphans", def.ThirteenOrphans)
	return Rule{
		SevenPairs:      v.GetBool("rule.seven_pairs"),
		ThirteenOrphans: v.GetBool("rule.thirteen_orphans"),
	}
}

// LoadRuleFile 读取yaml文件, 返回viper以便调用方继续读取其他配置
func LoadRuleFile(file string) (Rule, *viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return DefaultRule(), v, fmt.Errorf("read config %s: %w", file, err)
	}
	return LoadRule(v), v, nil
}
