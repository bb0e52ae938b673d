package xtable

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/omeyang/macvendor/pkg/observability/xlog"
	"github.com/omeyang/macvendor/pkg/observability/xmetrics"
	"github.com/omeyang/macvendor/pkg/oui/xsource"
	"github.com/omeyang/macvendor/pkg/oui/xstore"
	"github.com/omeyang/macvendor/pkg/util/xmac"
)

//go:generate mockgen -destination=mock_source_test.go -package=xtable github.com/omeyang/macvendor/pkg/oui/xsource Source
//go:generate mockgen -destination=mock_store_test.go -package=xtable github.com/omeyang/macvendor/pkg/oui/xstore Store

const component = "xtable"

// State 表的生命周期状态
type State int

const (
	// StateLoaded 刚从缓存载入，尚未刷新
	StateLoaded State = iota
	// StateRefreshed 至少成功替换过一次
	StateRefreshed
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateRefreshed:
		return "refreshed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Table OUI → 厂商表
type Table struct {
	src      xsource.Source
	store    xstore.Store
	data     map[string]string
	state    State
	logger   xlog.Logger
	observer xmetrics.Observer
}

// New 创建 Table 并从 store 载入缓存。
func New(ctx context.Context, src xsource.Source, store xstore.Store, opts ...Option) (*Table, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if store == nil {
		return nil, ErrNilStore
	}

	t := &Table{
		src:      src,
		store:    store,
		state:    StateLoaded,
		logger:   xlog.Discard(),
		observer: xmetrics.NoopObserver{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	t.logger = t.logger.With(xlog.Component(component))

	t.data = store.Load(ctx)
	if t.data == nil {
		t.data = map[string]string{}
	}
	t.logger.Debug(ctx, "table loaded", xlog.Count(len(t.data)))
	return t, nil
}

// Update 从数据源全量刷新并写回缓存。
//
// 同一 OUI 的多种写法规范化后冲突时，按原始键字典序最后一个生效。
func (t *Table) Update(ctx context.Context) (err error) {
	ctx, span := xmetrics.Start(ctx, t.observer, xmetrics.SpanOptions{
		Component: component,
		Operation: "update",
	})
	defer func() {
		span.End(xmetrics.Result{Err: err, Attrs: []xmetrics.Attr{xmetrics.Int("entries", len(t.data))}})
	}()

	start := time.Now()
	raw, err := t.src.Fetch(ctx)
	if err != nil {
		t.logger.Warn(ctx, "registry fetch failed", xlog.Err(err))
		return fmt.Errorf("xtable: fetch: %w", err)
	}

	next, err := normalize(raw)
	if err != nil {
		t.logger.Warn(ctx, "registry contains invalid assignment", xlog.Err(err))
		return err
	}

	t.data = next
	t.state = StateRefreshed

	if err := t.store.Dump(ctx, maps.Clone(next)); err != nil {
		t.logger.Error(ctx, "table refreshed but cache not persisted", xlog.Err(err))
		return fmt.Errorf("xtable: dump: %w", err)
	}

	t.logger.Info(ctx, "table refreshed",
		xlog.Count(len(next)),
		xlog.Duration(time.Since(start)),
	)
	return nil
}

func normalize(raw map[string]string) (map[string]string, error) {
	next := make(map[string]string, len(raw))
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		oui, err := xmac.ParseOUI(key)
		if err != nil {
			return nil, fmt.Errorf("xtable: assignment %q: %w", key, err)
		}
		next[oui.String()] = raw[key]
	}
	return next, nil
}

// LookupByOUI 按 OUI 查询厂商。raw 接受 xmac 支持的任意写法。
func (t *Table) LookupByOUI(ctx context.Context, raw string) (string, bool, error) {
	oui, err := xmac.ParseOUI(raw)
	if err != nil {
		return "", false, err
	}
	return t.lookup(ctx, "lookup_oui", oui)
}

// LookupByMAC 按完整 MAC 地址查询厂商。
func (t *Table) LookupByMAC(ctx context.Context, raw string) (string, bool, error) {
	addr, err := xmac.Parse(raw)
	if err != nil {
		return "", false, err
	}
	return t.lookup(ctx, "lookup_mac", addr.OUI())
}

func (t *Table) lookup(ctx context.Context, operation string, oui xmac.Octets) (string, bool, error) {
	ctx, span := xmetrics.Start(ctx, t.observer, xmetrics.SpanOptions{
		Component: component,
		Operation: operation,
		Attrs:     []xmetrics.Attr{xmetrics.String("oui", oui.String())},
	})

	vendor, found := t.data[oui.String()]
	status := xmetrics.StatusOK
	if !found {
		status = xmetrics.StatusNotFound
	}
	span.End(xmetrics.Result{Status: status})

	t.logger.Debug(ctx, "lookup",
		xlog.Operation(operation),
		xlog.OUI(oui.String()),
		xlog.Vendor(vendor),
		slog.Bool("found", found),
	)
	return vendor, found, nil
}

// Len 表中条目数
func (t *Table) Len() int {
	return len(t.data)
}

// State 当前状态
func (t *Table) State() State {
	return t.state
}

// Snapshot 返回表的副本
func (t *Table) Snapshot() map[string]string {
	return maps.Clone(t.data)
}
