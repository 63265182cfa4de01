package locale

import "regexp"

// separatorPattern 子标签分隔符，"_" 与 "-" 等价且允许在同一字符串中混用.
var separatorPattern = regexp.MustCompile(`[_-]`)

// Parse 将原始标签字符串解析为 Tag，永不失败.
//
// 先按分隔符逐个切分，再按 token 数量组装：
//   - 1 个 token：仅语言
//   - 2 个 token：第二段命中文字闭集则为 语言+文字，否则为 语言+地区
//   - 3 个及以上：语言+文字+地区，第四段起丢弃
//
// 三段式输入的第二段一律落在文字位，即使它并非合法文字代码，
// 因此 语言+变体+地区 形态的标签会被解释为 语言+文字+地区.
// 这是已知限制，为保持行为稳定而保留，调用方不应依赖变体段.
func Parse(raw string) Tag {
	tokens := separatorPattern.Split(raw, -1)
	switch len(tokens) {
	case 0:
		// Split 对任意输入至少返回一个元素，这里仅作防御.
		return Tag{Language: raw}
	case 1:
		return Tag{Language: tokens[0]}
	case 2:
		if IsScriptCode(tokens[1]) {
			return Tag{Language: tokens[0], Script: tokens[1]}
		}
		return Tag{Language: tokens[0], Region: tokens[1]}
	default:
		return Tag{Language: tokens[0], Script: tokens[1], Region: tokens[2]}
	}
}
