package locale

import (
	"net/http"
)

// HTTPMiddleware 返回 HTTP 中间件，从请求头解析语言标签并存入 context.
//
// 默认直接存入解析结果；配置支持列表后会先执行最佳匹配，
// 匹配失败时退回 WithDefaultTag 设置的兜底标签.
//
// 示例:
//
//	// 仅解析
//	handler = locale.HTTPMiddleware()(handler)
//
//	// 解析 + 最佳匹配 + 兜底
//	handler = locale.HTTPMiddleware(
//	    locale.WithSupported("en-US", "zh-Hans-CN", "ar"),
//	    locale.WithDefaultTag(locale.Tag{Language: "en", Region: "US"}),
//	)(handler)
func HTTPMiddleware(opts ...Option) func(http.Handler) http.Handler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := o.resolve(r.Header.Get(o.header))
			ctx := WithLocale(r.Context(), tag)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
