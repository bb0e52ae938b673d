// Package xretry 是 [avast/retry-go/v5] 的薄封装。
//
// macvendor 只在命令行拉取远程注册表时重试，核心查表逻辑不重试。
//
//	vendors, err := xretry.DoWithData(ctx, func() (map[string]string, error) {
//		return src.Fetch(ctx)
//	},
//		xretry.Attempts(cfg.Attempts),
//		xretry.Delay(cfg.RetryDelay),
//		xretry.RetryOn(xsource.ErrSourceUnavailable),
//	)
//
// # 错误分类
//
// 默认规则：[Unrecoverable] 与 [PermanentError] 不重试，其他错误重试。
// [RetryOn] 进一步收窄为只重试匹配 errors.Is 的错误。
//
// [avast/retry-go/v5]: https://github.com/avast/retry-go
package xretry
