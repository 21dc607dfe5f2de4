// Package app 提供节点应用的依赖装配
//
// 基于fx将配置、日志、存储、执行引擎与HTTP API组装为一个可
// 启停的应用。装配遵循各模块的Module()约定，生命周期钩子负责
// 存储关闭与HTTP服务优雅退出。
package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	apihttp "github.com/luoshu/v1/internal/api/http"
	"github.com/luoshu/v1/internal/api/http/handlers"
	executorconfig "github.com/luoshu/v1/internal/config/executor"
	logconfig "github.com/luoshu/v1/internal/config/log"
	badgerconfig "github.com/luoshu/v1/internal/config/storage/badger"
	memoryconfig "github.com/luoshu/v1/internal/config/storage/memory"
	"github.com/luoshu/v1/internal/core/executor"
	logimpl "github.com/luoshu/v1/internal/core/infrastructure/log"
	"github.com/luoshu/v1/internal/core/infrastructure/storage"
	logInterface "github.com/luoshu/v1/pkg/interfaces/infrastructure/log"
	"go.uber.org/fx"
)

// Options 应用装配选项
type Options struct {
	DataDir     string // 数据目录
	ListenAddr  string // HTTP监听地址
	ChainID     string // 链标识（0x十六进制），为空时使用默认
	CyclesPrice uint64 // 单位cycle价格，为0时使用默认
	CyclesLimit uint64 // 单次调用cycles上限，为0时使用默认
	LogLevel    string // 日志级别，为空时使用默认
}

// New 组装节点应用
func New(opts Options) *fx.App {
	return fx.New(
		fx.NopLogger,

		// 配置
		fx.Provide(
			func() (logInterface.Logger, error) {
				return logimpl.New(logconfig.New(&logconfig.LogOptions{Level: opts.LogLevel, Console: true}))
			},
			func() *badgerconfig.Config {
				return badgerconfig.New(opts.DataDir)
			},
			func() *memoryconfig.Config {
				return memoryconfig.New(nil)
			},
			func() (*executorconfig.Config, error) {
				return executorconfig.New(&executorconfig.ExecutorOptions{
					ChainID:     opts.ChainID,
					CyclesPrice: opts.CyclesPrice,
					CyclesLimit: opts.CyclesLimit,
				})
			},
		),

		// 基础设施与执行引擎
		storage.Module(),
		executor.Module(),

		// HTTP API
		fx.Provide(
			handlers.NewAssetHandler,
			apihttp.NewRouter,
		),
		fx.Invoke(func(lc fx.Lifecycle, router *gin.Engine, logger logInterface.Logger) {
			server := &http.Server{
				Addr:    opts.ListenAddr,
				Handler: router,
			}

			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					logger.Infof("HTTP服务启动，监听地址: %s", opts.ListenAddr)
					go func() {
						if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
							logger.Errorf("HTTP服务异常退出: %v", err)
						}
					}()
					return nil
				},
				OnStop: func(ctx context.Context) error {
					logger.Info("正在关闭HTTP服务...")
					return server.Shutdown(ctx)
				},
			})
		}),
	)
}
