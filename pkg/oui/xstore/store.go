package xstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/omeyang/macvendor/pkg/observability/xlog"
)

const (
	// DefaultPath 默认缓存文件，相对当前工作目录
	DefaultPath = "oui.json"

	dirPerm  = 0o750
	filePerm = 0o644
)

// Store OUI 表的持久化
type Store interface {
	// Load 读取缓存，任何失败都返回空表
	Load(ctx context.Context) map[string]string
	// Dump 用 table 整体替换缓存
	Dump(ctx context.Context, table map[string]string) error
}

var _ Store = (*JSONStore)(nil)

// JSONStore 基于 JSON 文件的 Store
type JSONStore struct {
	path   string
	fs     afero.Fs
	logger xlog.Logger
}

// Option JSONStore 选项
type Option func(*JSONStore)

// WithPath 设置缓存文件路径，空串忽略
func WithPath(path string) Option {
	return func(s *JSONStore) {
		if path != "" {
			s.path = path
		}
	}
}

// WithFs 设置文件系统，默认为操作系统文件系统
func WithFs(fsys afero.Fs) Option {
	return func(s *JSONStore) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

// WithLogger 设置日志
func WithLogger(logger xlog.Logger) Option {
	return func(s *JSONStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewJSONStore 创建 JSONStore
func NewJSONStore(opts ...Option) *JSONStore {
	s := &JSONStore{
		path:   DefaultPath,
		fs:     afero.NewOsFs(),
		logger: xlog.Discard(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.logger = s.logger.With(xlog.Component("xstore"), xlog.Path(s.path))
	return s
}

// Path 返回缓存文件路径
func (s *JSONStore) Path() string {
	return s.path
}

// Load 读取缓存文件，返回的 map 非 nil，调用方独占。
func (s *JSONStore) Load(ctx context.Context) map[string]string {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug(ctx, "cache file not found, starting empty")
		} else {
			s.logger.Warn(ctx, "cache file unreadable, starting empty", xlog.Err(err))
		}
		return map[string]string{}
	}

	var table map[string]string
	if err := json.Unmarshal(data, &table); err != nil {
		s.logger.Warn(ctx, "cache file corrupt, starting empty", xlog.Err(err))
		return map[string]string{}
	}
	if table == nil {
		table = map[string]string{}
	}
	s.logger.Debug(ctx, "cache loaded", xlog.Count(len(table)))
	return table
}

// Dump 原子替换缓存文件，父目录不存在时自动创建。
func (s *JSONStore) Dump(ctx context.Context, table map[string]string) error {
	if table == nil {
		table = map[string]string{}
	}
	data, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrPersistence, err)
	}

	if err := s.writeAtomic(data); err != nil {
		s.logger.Error(ctx, "cache dump failed", xlog.Err(err))
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	s.logger.Debug(ctx, "cache dumped", xlog.Count(len(table)), xlog.Size(int64(len(data))))
	return nil
}

func (s *JSONStore) writeAtomic(data []byte) (err error) {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return err
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			if rmErr := s.fs.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				err = errors.Join(err, rmErr)
			}
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close() //nolint:errcheck // 已有写入错误
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close() //nolint:errcheck // 已有同步错误
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := s.fs.Chmod(tmpName, filePerm); err != nil {
		return err
	}
	return s.fs.Rename(tmpName, s.path)
}
