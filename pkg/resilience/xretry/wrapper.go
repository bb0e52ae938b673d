package xretry

import (
	"context"
	"errors"

	retry "github.com/avast/retry-go/v5"
)

type (
	// Option retry-go 配置项
	Option = retry.Option
	// DelayTypeFunc 延迟计算函数
	DelayTypeFunc = retry.DelayTypeFunc
	// Error 多次尝试累积的错误列表
	Error = retry.Error
)

var (
	// Attempts 总尝试次数（含首次），0 表示无限
	Attempts = retry.Attempts
	// Delay 基础间隔
	Delay = retry.Delay
	// MaxDelay 间隔上限
	MaxDelay = retry.MaxDelay
	// DelayType 间隔计算方式
	DelayType = retry.DelayType
	// OnRetry 每次失败后回调，attempt 从 0 开始
	OnRetry = retry.OnRetry
	// RetryIf 自定义重试判定，会覆盖默认规则
	RetryIf = retry.RetryIf
	// LastErrorOnly 只返回最后一次错误
	LastErrorOnly = retry.LastErrorOnly

	// FixedDelay 固定间隔
	FixedDelay = retry.FixedDelay
	// BackOffDelay 指数退避
	BackOffDelay = retry.BackOffDelay

	// Unrecoverable 标记错误不可恢复
	Unrecoverable = retry.Unrecoverable
	// IsRecoverable 是否未被 Unrecoverable 标记
	IsRecoverable = retry.IsRecoverable
)

// Do 执行 fn，失败时按 opts 重试。ctx 取消后立即停止。
func Do(ctx context.Context, fn func() error, opts ...Option) error {
	return retry.New(defaultOpts(ctx, opts)...).Do(fn)
}

// DoWithData 带返回值的 Do。
func DoWithData[T any](ctx context.Context, fn func() (T, error), opts ...Option) (T, error) {
	return retry.NewWithData[T](defaultOpts(ctx, opts)...).Do(fn)
}

// RetryOn 只重试 errors.Is 匹配 targets 之一的错误，默认规则仍然生效。
func RetryOn(targets ...error) Option {
	return RetryIf(func(err error) bool {
		if !shouldRetry(err) {
			return false
		}
		for _, target := range targets {
			if errors.Is(err, target) {
				return true
			}
		}
		return false
	})
}

// defaultOpts 调用方的 opts 追加在后，其中的 RetryIf 覆盖默认规则。
func defaultOpts(ctx context.Context, opts []Option) []Option {
	all := make([]Option, 0, len(opts)+2)
	all = append(all, retry.Context(ctx), RetryIf(shouldRetry))
	return append(all, opts...)
}

func shouldRetry(err error) bool {
	return IsRecoverable(err) && IsRetryable(err)
}
