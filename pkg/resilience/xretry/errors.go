package xretry

import "errors"

// RetryableError 自带重试判定的错误
type RetryableError interface {
	error
	Retryable() bool
}

// PermanentError 不应重试的错误
type PermanentError struct {
	Err error
}

// NewPermanentError 把 err 标记为不可重试
func NewPermanentError(err error) *PermanentError {
	return &PermanentError{Err: err}
}

func (e *PermanentError) Error() string {
	if e.Err == nil {
		return "permanent error"
	}
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error { return e.Err }

func (e *PermanentError) Retryable() bool { return false }

// IsRetryable nil 返回 false；实现 RetryableError 的按其判定；其余视为可重试。
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var re RetryableError
	if errors.As(err, &re) {
		return re.Retryable()
	}
	return true
}
