package locale

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// UnaryServerInterceptor 返回一元 gRPC 拦截器，从 metadata 解析语言标签并存入 context.
//
// 示例:
//
//	server := grpc.NewServer(
//	    grpc.UnaryInterceptor(locale.UnaryServerInterceptor(
//	        locale.WithSupported("en-US", "zh-Hans-CN"),
//	    )),
//	)
func UnaryServerInterceptor(opts ...Option) grpc.UnaryServerInterceptor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		ctx = o.extractAndStore(ctx)
		return handler(ctx, req)
	}
}

// StreamServerInterceptor 返回流 gRPC 拦截器，从 metadata 解析语言标签并存入 context.
func StreamServerInterceptor(opts ...Option) grpc.StreamServerInterceptor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		ctx := o.extractAndStore(ss.Context())
		wrapped := &wrappedServerStream{
			ServerStream: ss,
			ctx:          ctx,
		}
		return handler(srv, wrapped)
	}
}

// extractAndStore 从 gRPC metadata 提取原始语言值，解析后存入 context.
func (o *options) extractAndStore(ctx context.Context) context.Context {
	var raw string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(o.metadataKey); len(values) > 0 {
			raw = values[0]
		}
	}
	tag := o.resolve(raw)
	return WithLocale(ctx, tag)
}

// wrappedServerStream 包装 grpc.ServerStream 以提供自定义 context.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context 返回包装后的 context.
func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}
