package xsource

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/omeyang/macvendor/pkg/observability/xlog"
	"github.com/omeyang/macvendor/pkg/observability/xmetrics"
)

const (
	// DefaultURL IEEE MA-L 注册表
	DefaultURL = "http://standards-oui.ieee.org/oui/oui.csv"

	// maxResponseSize 完整注册表约 4MB，留足余量
	maxResponseSize = 64 << 20

	userAgent = "macvendor"
)

// Source 注册表数据源
type Source interface {
	// Fetch 返回原始分配号到组织名的映射
	Fetch(ctx context.Context) (map[string]string, error)
}

var _ Source = (*HTTPSource)(nil)

// HTTPSource 通过 HTTP 拉取注册表 CSV
type HTTPSource struct {
	url      string
	client   *http.Client
	logger   xlog.Logger
	observer xmetrics.Observer
}

// Option HTTPSource 选项
type Option func(*HTTPSource)

// WithURL 设置注册表地址，空串忽略
func WithURL(url string) Option {
	return func(s *HTTPSource) {
		if url != "" {
			s.url = url
		}
	}
}

// WithHTTPClient 设置 HTTP 客户端，nil 忽略
func WithHTTPClient(client *http.Client) Option {
	return func(s *HTTPSource) {
		if client != nil {
			s.client = client
		}
	}
}

// WithLogger 设置日志
func WithLogger(logger xlog.Logger) Option {
	return func(s *HTTPSource) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver 设置观测器
func WithObserver(observer xmetrics.Observer) Option {
	return func(s *HTTPSource) {
		if observer != nil {
			s.observer = observer
		}
	}
}

// NewHTTPSource 创建 HTTPSource。默认客户端不设超时，由 ctx 控制。
func NewHTTPSource(opts ...Option) *HTTPSource {
	s := &HTTPSource{
		url:      DefaultURL,
		client:   &http.Client{},
		logger:   xlog.Discard(),
		observer: xmetrics.NoopObserver{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.logger = s.logger.With(xlog.Component("xsource"))
	return s
}

// URL 返回注册表地址
func (s *HTTPSource) URL() string {
	return s.url
}

// Fetch 拉取并解析注册表
func (s *HTTPSource) Fetch(ctx context.Context) (vendors map[string]string, err error) {
	ctx, span := xmetrics.Start(ctx, s.observer, xmetrics.SpanOptions{
		Component: "xsource",
		Operation: "fetch",
		Kind:      xmetrics.KindClient,
		Attrs:     []xmetrics.Attr{xmetrics.String("url", s.url)},
	})
	defer func() {
		span.End(xmetrics.Result{Err: err, Attrs: []xmetrics.Attr{xmetrics.Int("rows", len(vendors))}})
	}()

	start := time.Now()
	body, err := s.download(ctx)
	if err != nil {
		return nil, err
	}

	vendors, err = ParseCSV(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "registry fetched",
		xlog.URL(s.url),
		xlog.Size(int64(len(body))),
		xlog.Count(len(vendors)),
		xlog.Digest(strconv.FormatUint(xxhash.Sum64(body), 16)),
		xlog.Duration(time.Since(start)),
	)
	return vendors, nil
}

func (s *HTTPSource) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrSourceUnavailable, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/csv")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }() //nolint:errcheck // 只读响应，Close 错误无意义

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warn(ctx, "registry returned failure status",
			xlog.URL(s.url), xlog.StatusCode(resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	// 多读 1 字节用于判断是否超限
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrSourceUnavailable, err)
	}
	if len(body) > maxResponseSize {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrMalformedResponse, maxResponseSize)
	}
	return body, nil
}
