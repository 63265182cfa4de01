package locale

// FindBestMatch 在有序的支持列表中为请求标签挑选最佳匹配.
//
// 按三级优先级逐级扫描，每级按列表顺序取首个命中：
//  1. 完全相等：语言、文字、地区全部一致
//  2. 语言+地区一致：忽略文字，仅当请求携带地区时参与
//  3. 仅语言一致
//
// 高优先级恒胜于列表位置，列表顺序只在同级内充当决胜条件.
// 三级均未命中时返回 ok=false，此时由调用方自行兜底默认标签.
// supported 中的重复条目不做校验，重复时首个生效.
func FindBestMatch(requested Tag, supported []Tag) (Tag, bool) {
	for _, s := range supported {
		if s == requested {
			return s, true
		}
	}

	if requested.Region != "" {
		for _, s := range supported {
			if s.Language == requested.Language && s.Region == requested.Region {
				return s, true
			}
		}
	}

	for _, s := range supported {
		if s.Language == requested.Language {
			return s, true
		}
	}

	return Tag{}, false
}
