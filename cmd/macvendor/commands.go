package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/macvendor/pkg/config/xconf"
	"github.com/omeyang/macvendor/pkg/observability/xlog"
	"github.com/omeyang/macvendor/pkg/observability/xmetrics"
	"github.com/omeyang/macvendor/pkg/oui/xsource"
	"github.com/omeyang/macvendor/pkg/oui/xstore"
	"github.com/omeyang/macvendor/pkg/oui/xtable"
	"github.com/omeyang/macvendor/pkg/resilience/xretry"
	"github.com/omeyang/macvendor/pkg/util/xfile"
	"github.com/omeyang/macvendor/pkg/util/xmac"
)

// exitError 命令已完成输出，只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 参数错误，退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{msg: err.Error()}
}

// createUpdateCommand 创建 update 子命令。
func createUpdateCommand(e env) *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "从注册表下载并刷新本地缓存",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "from-ieee",
				Aliases: []string{"i"},
				Usage:   "从 IEEE 注册表更新",
				Value:   true,
			},
		},
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if !cmd.Bool("from-ieee") {
				return &usageError{msg: "no registry selected, use --from-ieee"}
			}
			s, err := setup(ctx, cmd, e)
			if err != nil {
				return err
			}
			defer s.close()
			return cmdUpdate(ctx, s)
		},
	}
}

// createLookupCommand 创建 lookup 子命令。
func createLookupCommand(e env) *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "查询 MAC 地址厂商",
		ArgsUsage: "[MAC...]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "mac-address",
				Aliases: []string{"m"},
				Usage:   "待查询的 MAC 地址，可重复",
			},
		},
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			macs := append(cmd.StringSlice("mac-address"), cmd.Args().Slice()...)
			if len(macs) == 0 {
				return &usageError{msg: "at least one MAC address is required"}
			}
			s, err := setup(ctx, cmd, e)
			if err != nil {
				return err
			}
			defer s.close()
			return cmdLookup(ctx, s, macs)
		},
	}
}

// session 一次命令执行的组件
type session struct {
	env     env
	cfg     xconf.Config
	logger  xlog.Logger
	table   *xtable.Table
	cleanup func() error
}

func (s *session) close() {
	if err := s.cleanup(); err != nil {
		_, _ = fmt.Fprintf(s.env.stderr, "关闭日志失败: %v\n", err)
	}
}

// loadConfig 读取配置文件，再用显式设置的命令行参数覆盖。
func loadConfig(cmd *cli.Command) (xconf.Config, error) {
	cfg, err := xconf.Load(cmd.String("config"))
	if err != nil {
		return xconf.Config{}, &usageError{msg: err.Error()}
	}
	if cmd.IsSet("cache") {
		cfg.Cache.Path = cmd.String("cache")
	}
	if cmd.IsSet("url") {
		cfg.Registry.URL = cmd.String("url")
	}
	if cmd.IsSet("timeout") {
		cfg.Registry.Timeout = cmd.Duration("timeout")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return xconf.Config{}, &usageError{msg: err.Error()}
	}
	return cfg, nil
}

// setup 按配置组装日志、观测、数据源、缓存与表。
func setup(ctx context.Context, cmd *cli.Command, e env) (*session, error) {
	if cmd.Bool("no-color") {
		color.NoColor = true
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	builder := xlog.New().
		SetOutput(e.stderr).
		SetLevelString(cfg.Log.Level).
		SetFormat(cfg.Log.Format)
	if cfg.Log.File != "" {
		builder = builder.SetRotation(cfg.Log.File)
	}
	logger, cleanup, err := builder.Build()
	if err != nil {
		return nil, &usageError{msg: err.Error()}
	}

	s := &session{env: e, cfg: cfg, logger: logger, cleanup: cleanup}
	table, err := s.openTable(ctx)
	if err != nil {
		s.close()
		return nil, err
	}
	s.table = table
	return s, nil
}

func (s *session) openTable(ctx context.Context) (*xtable.Table, error) {
	observer, err := xmetrics.NewOTelObserver()
	if err != nil {
		return nil, err
	}

	cachePath, err := xfile.Resolve(s.cfg.Cache.Path)
	if err != nil {
		return nil, &usageError{msg: fmt.Sprintf("cache path: %v", err)}
	}

	src := xsource.NewHTTPSource(
		xsource.WithURL(s.cfg.Registry.URL),
		xsource.WithHTTPClient(&http.Client{Timeout: s.cfg.Registry.Timeout}),
		xsource.WithLogger(s.logger),
		xsource.WithObserver(observer),
	)
	store := xstore.NewJSONStore(
		xstore.WithPath(cachePath),
		xstore.WithFs(s.env.fs),
		xstore.WithLogger(s.logger),
	)
	return xtable.New(ctx, src, store,
		xtable.WithLogger(s.logger),
		xtable.WithObserver(observer),
	)
}

// cmdUpdate 刷新表，仅对注册表不可用重试。
func cmdUpdate(ctx context.Context, s *session) error {
	reg := s.cfg.Registry
	err := xretry.Do(ctx, func() error { return s.table.Update(ctx) },
		xretry.Attempts(reg.Attempts),
		xretry.Delay(reg.RetryDelay),
		xretry.DelayType(xretry.FixedDelay),
		xretry.LastErrorOnly(true),
		xretry.RetryOn(xsource.ErrSourceUnavailable),
		xretry.OnRetry(func(n uint, err error) {
			s.logger.Warn(ctx, "update failed, retrying",
				xlog.Attempt(n+1), xlog.URL(reg.URL), xlog.Err(err))
		}),
	)
	if err != nil {
		if errors.Is(err, xstore.ErrPersistence) {
			// 内存已替换，但缓存未写入，下次运行仍读取旧缓存
			return fmt.Errorf("registry downloaded but cache %s not written: %w", s.cfg.Cache.Path, err)
		}
		return fmt.Errorf("update from %s failed: %w", reg.URL, err)
	}

	_, _ = color.New(color.FgGreen).Fprintf(s.env.stdout,
		"Updated %d vendors into %s\n", s.table.Len(), s.cfg.Cache.Path)
	return nil
}

// cmdLookup 逐个查询，格式错误的 MAC 打印错误后继续。
func cmdLookup(ctx context.Context, s *session, macs []string) error {
	found := color.New(color.FgGreen)
	missing := color.New(color.FgYellow)
	invalid := color.New(color.FgRed)

	failed := false
	for _, raw := range macs {
		addr, err := xmac.Parse(raw)
		if err != nil {
			failed = true
			_, _ = invalid.Fprintf(s.env.stderr, "Invalid MAC address %q: %v\n", raw, err)
			continue
		}

		vendor, ok, err := s.table.LookupByMAC(ctx, addr.String())
		switch {
		case err != nil:
			failed = true
			_, _ = invalid.Fprintf(s.env.stderr, "Lookup %s failed: %v\n", addr, err)
		case ok:
			_, _ = found.Fprintf(s.env.stdout, "%s => %s\n", addr, vendor)
		default:
			_, _ = missing.Fprintf(s.env.stderr, "Sorry, not found vendor for %s\n", addr)
		}
	}

	if failed {
		return &exitError{code: 1}
	}
	return nil
}

// setupSignalHandler 第一次信号取消上下文，第二次强制退出。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}
