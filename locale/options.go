package locale

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// HeaderAcceptLanguage HTTP 请求头中的语言键名.
	HeaderAcceptLanguage = "Accept-Language"

	// MetadataKeyAcceptLanguage gRPC metadata 中的 Accept-Language 键名.
	MetadataKeyAcceptLanguage = "accept-language"
)

// options 中间件与拦截器的公共配置.
type options struct {
	header      string
	metadataKey string
	supported   []Tag
	defaultTag  Tag
	hasDefault  bool
	logger      *zap.Logger
}

// defaultOptions 返回默认配置.
func defaultOptions() *options {
	return &options{
		header:      HeaderAcceptLanguage,
		metadataKey: MetadataKeyAcceptLanguage,
	}
}

// Option 配置选项函数.
type Option func(*options)

// WithHeader 自定义 HTTP 语言请求头键名.
func WithHeader(header string) Option {
	return func(o *options) {
		o.header = header
	}
}

// WithMetadataKey 自定义 gRPC metadata 键名.
func WithMetadataKey(key string) Option {
	return func(o *options) {
		o.metadataKey = key
	}
}

// WithSupportedTags 设置应用支持的标签列表.
// 列表顺序即同级匹配时的决胜顺序；设置后会对解析结果执行最佳匹配.
func WithSupportedTags(tags ...Tag) Option {
	return func(o *options) {
		o.supported = tags
	}
}

// WithSupported 以原始字符串形式设置支持列表，逐个经 Parse 解析.
func WithSupported(raws ...string) Option {
	return func(o *options) {
		tags := make([]Tag, 0, len(raws))
		for _, raw := range raws {
			tags = append(tags, Parse(raw))
		}
		o.supported = tags
	}
}

// WithDefaultTag 设置最佳匹配失败时的兜底标签.
// 仅在配置了支持列表时生效.
func WithDefaultTag(tag Tag) Option {
	return func(o *options) {
		o.defaultTag = tag
		o.hasDefault = true
	}
}

// WithLogger 设置 zap 日志记录器，以 debug 级别记录协商结果.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// resolve 解析原始值，并在配置了支持列表时执行最佳匹配.
func (o *options) resolve(raw string) Tag {
	tag := Parse(firstEntry(raw))

	if len(o.supported) > 0 {
		best, ok := FindBestMatch(tag, o.supported)
		switch {
		case ok:
			tag = best
		case o.hasDefault:
			tag = o.defaultTag
		}
	}

	if o.logger != nil {
		o.logger.Debug("locale resolved",
			zap.String("raw", raw),
			zap.String("tag", tag.String()),
		)
	}
	return tag
}

// firstEntry 取 Accept-Language 值的首个条目并去掉 ";q=" 参数.
// 不做 RFC 4647 的质量权重协商，条目顺序即客户端偏好顺序.
func firstEntry(raw string) string {
	if i := strings.IndexByte(raw, ','); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.IndexByte(raw, ';'); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}
