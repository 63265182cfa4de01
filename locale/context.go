package locale

import "context"

// contextKey context 键类型，避免与其他包冲突.
type contextKey struct{}

// localeKey 存储协商结果标签的 context 键.
var localeKey contextKey

// WithLocale 将标签存入 context.
func WithLocale(ctx context.Context, tag Tag) context.Context {
	return context.WithValue(ctx, localeKey, tag)
}

// FromContext 从 context 取出标签.
func FromContext(ctx context.Context) (Tag, bool) {
	tag, ok := ctx.Value(localeKey).(Tag)
	return tag, ok
}

// GetLanguage 返回 context 中标签的语言代码，未设置时返回空字符串.
func GetLanguage(ctx context.Context) string {
	tag, _ := FromContext(ctx)
	return tag.Language
}

// GetScript 返回 context 中标签的文字代码，未设置时返回空字符串.
func GetScript(ctx context.Context) string {
	tag, _ := FromContext(ctx)
	return tag.Script
}

// GetRegion 返回 context 中标签的地区代码，未设置时返回空字符串.
func GetRegion(ctx context.Context) string {
	tag, _ := FromContext(ctx)
	return tag.Region
}

// GetLocale 返回 context 中标签的完整字符串表示，未设置时返回空字符串.
func GetLocale(ctx context.Context) string {
	tag, _ := FromContext(ctx)
	return tag.String()
}
