package xmetrics

import "context"

// Kind 跨度类型
type Kind int

const (
	// KindInternal 进程内操作，如查表、读写缓存文件
	KindInternal Kind = iota
	// KindClient 对外调用，如拉取远程 CSV
	KindClient
)

func (k Kind) String() string {
	if k == KindClient {
		return "Client"
	}
	return "Internal"
}

// Status 操作结果
type Status string

const (
	StatusOK       Status = "ok"
	StatusNotFound Status = "not_found"
	StatusError    Status = "error"
)

// Attr 观测属性
type Attr struct {
	Key   string
	Value any
}

// SpanOptions 跨度参数
type SpanOptions struct {
	Component string
	Operation string
	Kind      Kind
	Attrs     []Attr
}

// Result 跨度结果。Status 为空时由 Err 推导。
type Result struct {
	Status Status
	Err    error
	Attrs  []Attr
}

// Span 一次观测，End 只生效一次
type Span interface {
	End(result Result)
}

// Observer 观测入口
type Observer interface {
	Start(ctx context.Context, opts SpanOptions) (context.Context, Span)
}

// NoopObserver 空实现
type NoopObserver struct{}

func (NoopObserver) Start(ctx context.Context, _ SpanOptions) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx, NoopSpan{}
}

// NoopSpan 空跨度
type NoopSpan struct{}

func (NoopSpan) End(Result) {}

// Start 用 observer 开始观测，保证返回非 nil 的 ctx 和 Span。
// observer 为 nil 或返回 nil 值时兜底为空实现。
func Start(ctx context.Context, observer Observer, opts SpanOptions) (context.Context, Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	if observer == nil {
		return ctx, NoopSpan{}
	}
	retCtx, span := observer.Start(ctx, opts)
	if retCtx == nil {
		retCtx = ctx
	}
	if span == nil {
		span = NoopSpan{}
	}
	return retCtx, span
}

func (r Result) status() Status {
	if r.Status != "" {
		return r.Status
	}
	if r.Err != nil {
		return StatusError
	}
	return StatusOK
}
