// Package locale 提供语言区域标签的解析、最佳匹配与上下文传递能力.
package locale

import "strings"

// Tag 结构化的语言区域标签，不可变值对象.
//
// 各子标签的约定格式（仅约定，不强制）：
//   - Language 小写语言代码，必填，例如 "zh"
//   - Script 首字母大写的四字母文字代码，例如 "Hans"
//   - Region 大写地区代码，例如 "CN"
type Tag struct {
	Language string
	Script   string
	Region   string
}

// Equal 判断两个标签是否相等，语言、文字、地区逐项比较.
func (t Tag) Equal(other Tag) bool {
	return t == other
}

// String 以 "-" 连接各子标签，例如 "zh-Hans-CN".
func (t Tag) String() string {
	parts := make([]string, 0, 3)
	if t.Language != "" {
		parts = append(parts, t.Language)
	}
	if t.Script != "" {
		parts = append(parts, t.Script)
	}
	if t.Region != "" {
		parts = append(parts, t.Region)
	}
	return strings.Join(parts, "-")
}
