package locale

// scriptCodes 已知文字代码闭集.
//
// 刻意维护为字面量集合而非从外部库推导，以保证匹配行为完全可控；
// 扩充时逐项添加. 当前覆盖主流书写系统：拉丁、西里尔、阿拉伯、
// 简繁中文、日韩、希腊、希伯来、泰文、南亚与东南亚各文字等.
var scriptCodes = map[string]struct{}{
	"Arab": {},
	"Armn": {},
	"Beng": {},
	"Cans": {},
	"Cher": {},
	"Cyrl": {},
	"Deva": {},
	"Ethi": {},
	"Geor": {},
	"Grek": {},
	"Gujr": {},
	"Guru": {},
	"Hans": {},
	"Hant": {},
	"Hebr": {},
	"Jpan": {},
	"Khmr": {},
	"Knda": {},
	"Kore": {},
	"Laoo": {},
	"Latn": {},
	"Mlym": {},
	"Mong": {},
	"Mymr": {},
	"Orya": {},
	"Sinh": {},
	"Taml": {},
	"Telu": {},
	"Thaa": {},
	"Thai": {},
	"Tibt": {},
}

// IsScriptCode 判断 token 是否为已知的四字母文字代码.
//
// 规则：长度为 4、首字母大写、且命中 scriptCodes 闭集.
// 仅靠 "四字母且首字母大写" 的结构判断会把部分形似的地区类 token
// 误判为文字代码，因此必须查闭集. 未知 token 一律视为非文字代码.
func IsScriptCode(token string) bool {
	if len(token) != 4 {
		return false
	}
	if token[0] < 'A' || token[0] > 'Z' {
		return false
	}
	_, ok := scriptCodes[token]
	return ok
}
