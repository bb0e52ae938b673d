// macvendor 根据 IEEE OUI 注册表查询 MAC 地址所属厂商。
//
// 用法:
//
//	macvendor [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config     配置文件路径（.yaml/.yml/.json）
//	    --cache      缓存文件路径 (默认: oui.json)
//	    --url        注册表地址 (默认: IEEE MA-L CSV)
//	    --log-level  日志级别 debug/info/warn/error
//	    --timeout    下载超时 (默认: 60s)
//	    --no-color   禁用彩色输出
//
// 命令:
//
//	update         从注册表下载并刷新本地缓存
//	lookup         查询一个或多个 MAC 地址的厂商
//
// 命令行参数优先于配置文件。
//
// 退出码:
//
//	0: 成功
//	1: 执行失败（下载失败、缓存写入失败、存在格式错误的 MAC）
//	2: 参数错误
//
// 示例:
//
//	macvendor update
//	macvendor lookup -m 00:D0:EF:FF:FF:FF -m 00-22-72-01-02-03
//	macvendor --cache /var/cache/oui.json lookup 00d0.efff.ffff
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/macvendor/pkg/config/xconf"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// env 命令运行时依赖，测试中替换为内存实现
type env struct {
	stdout io.Writer
	stderr io.Writer
	fs     afero.Fs
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)

	code := run(ctx, os.Args, env{stdout: os.Stdout, stderr: os.Stderr, fs: afero.NewOsFs()})
	cancel()
	os.Exit(code)
}

// createApp 创建 CLI 应用。
func createApp(e env) *cli.Command {
	return &cli.Command{
		Name:      "macvendor",
		Usage:     "MAC 地址厂商查询工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    e.stdout,
		ErrWriter: e.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
			},
			&cli.StringFlag{
				Name:  "cache",
				Usage: "缓存文件路径",
				Value: xconf.DefaultCachePath,
			},
			&cli.StringFlag{
				Name:  "url",
				Usage: "注册表地址",
				Value: xconf.DefaultRegistryURL,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "下载超时",
				Value: xconf.DefaultTimeout,
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "禁用彩色输出",
			},
		},
		Commands: []*cli.Command{
			createUpdateCommand(e),
			createLookupCommand(e),
		},
		Authors: []any{
			"macvendor authors",
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return &usageError{msg: fmt.Sprintf("unknown command %q", cmd.Args().First())}
			}
			return cli.ShowAppHelp(cmd)
		},
		OnUsageError: onUsageError,
		// 由 run() 统一映射退出码，禁止 urfave/cli 直接调用 os.Exit
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				_, _ = fmt.Fprintln(e.stderr, err)
			}
		},
	}
}

// run 执行命令并返回退出码。
func run(ctx context.Context, args []string, e env) int {
	app := createApp(e)

	if err := app.Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			_, _ = fmt.Fprintf(e.stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if _, ok := err.(cli.ExitCoder); ok {
			return 2
		}
		_, _ = fmt.Fprintf(e.stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}
