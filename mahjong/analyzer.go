package mahjong

import (
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
)

// DefaultAnalyzer 包级函数使用的默认实例, 全部和了形开启
var DefaultAnalyzer = NewAnalyzer(DefaultRule())

// Analyzer 绑定规则的分析器, 无内部状态, 可并发使用
type Analyzer struct {
	rule Rule
	log  interfaces.Logger
}

type analyzerOptions struct {
	log interfaces.Logger
}

// AnalyzerOption 分析器选项
type AnalyzerOption func(*analyzerOptions)

// WithLogger 使用指定日志, 默认为 logger.Log
func WithLogger(l interfaces.Logger) AnalyzerOption {
	return func(o *analyzerOptions) {
		o.log = l
	}
}

func NewAnalyzer(rule Rule, opts ...AnalyzerOption) *Analyzer {
	options := &analyzerOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return &Analyzer{rule: rule, log: options.log}
}

// getLogger 未指定时跟随全局 logger.Log, 以便 SetLogger 之后生效
func (a *Analyzer) getLogger() interfaces.Logger {
	if a.log != nil {
		return a.log
	}
	return logger.Log
}

func (a *Analyzer) Rule() Rule {
	return a.rule
}

// IsComplete 按规则判断是否和了
func (a *Analyzer) IsComplete(h Hand34) bool {
	return a.Shape(h) != ShapeNone
}

// Shape 和了形, 未和了为ShapeNone; 兼具多形时依次优先国士 一般形 七对子
func (a *Analyzer) Shape(h Hand34) EShape {
	switch {
	case a.rule.ThirteenOrphans && IsCompleteThirteenOrphans(h):
		return ShapeThirteenOrphans
	case IsCompleteStandard(h):
		return ShapeStandard
	case a.rule.SevenPairs && IsCompleteSevenPairs(h):
		return ShapeSevenPairs
	}
	return ShapeNone
}
