// Package langname 提供语言代码到显示名称与书写方向的只读查询.
//
// 所有查询仅以语言代码为键，忽略文字与地区子标签；
// 表在构建期初始化且只读，可安全并发访问.
package langname

import "github.com/Tsukikage7/locale-kit/locale"

// Direction 文本书写方向.
type Direction int

const (
	// LTR 从左到右书写.
	LTR Direction = iota
	// RTL 从右到左书写.
	RTL
)

// String 返回方向的字符串表示.
func (d Direction) String() string {
	if d == RTL {
		return "RTL"
	}
	return "LTR"
}

// rtlLanguages 从右到左书写的语言闭集.
var rtlLanguages = map[string]struct{}{
	"ar":  {}, // 阿拉伯语
	"arc": {}, // 阿拉米语
	"ckb": {}, // 中库尔德语
	"dv":  {}, // 迪维希语
	"fa":  {}, // 波斯语
	"he":  {}, // 希伯来语
	"iw":  {}, // 希伯来语（旧代码）
	"ji":  {}, // 意第绪语（旧代码）
	"ks":  {}, // 克什米尔语
	"ps":  {}, // 普什图语
	"sd":  {}, // 信德语
	"ug":  {}, // 维吾尔语
	"ur":  {}, // 乌尔都语
	"yi":  {}, // 意第绪语
}

// IsRTL 判断语言是否从右到左书写.
func IsRTL(code string) bool {
	_, ok := rtlLanguages[code]
	return ok
}

// DirectionOf 返回标签的书写方向，仅取决于语言代码.
func DirectionOf(tag locale.Tag) Direction {
	if IsRTL(tag.Language) {
		return RTL
	}
	return LTR
}

// Name 返回语言的英文名称，未知代码原样返回.
func Name(code string) string {
	if name, ok := englishNames[code]; ok {
		return name
	}
	return code
}

// NativeName 返回语言的本语言名称，未知代码原样返回.
func NativeName(code string) string {
	if name, ok := nativeNames[code]; ok {
		return name
	}
	return code
}
