// Package storage 提供存储管理功能
package storage

import (
	"context"

	badgerconfig "github.com/luoshu/v1/internal/config/storage/badger"
	memoryconfig "github.com/luoshu/v1/internal/config/storage/memory"
	badgerstore "github.com/luoshu/v1/internal/core/infrastructure/storage/badger"
	memorystore "github.com/luoshu/v1/internal/core/infrastructure/storage/memory"
	"github.com/luoshu/v1/pkg/interfaces/infrastructure/log"
	storageInterface "github.com/luoshu/v1/pkg/interfaces/infrastructure/storage"
	"go.uber.org/fx"
)

// ModuleParams 定义存储模块的依赖参数
type ModuleParams struct {
	fx.In

	BadgerConfig *badgerconfig.Config // BadgerDB配置
	MemoryConfig *memoryconfig.Config `optional:"true"` // 内存缓存配置（可选）
	Logger       log.Logger           // 日志记录器
}

// ModuleOutput 定义存储模块的输出结构
type ModuleOutput struct {
	fx.Out

	BadgerStore storageInterface.BadgerStore // BadgerDB存储（必需，失败即错误）
	MemoryStore storageInterface.MemoryStore // 内存缓存（可选，失败时为nil）
}

// ProvideServices 构建存储服务
func ProvideServices(params ModuleParams) (ModuleOutput, error) {
	badgerStore, err := badgerstore.New(params.BadgerConfig, params.Logger)
	if err != nil {
		return ModuleOutput{}, err
	}

	var memoryStore storageInterface.MemoryStore
	if params.MemoryConfig != nil {
		memoryStore, err = memorystore.New(params.MemoryConfig, params.Logger)
		if err != nil {
			// 热读缓存是纯加速层，构建失败降级为无缓存
			params.Logger.Warnf("内存缓存构建失败，降级为无缓存: %v", err)
			memoryStore = nil
		}
	}

	return ModuleOutput{
		BadgerStore: badgerStore,
		MemoryStore: memoryStore,
	}, nil
}

// Module 返回存储模块
func Module() fx.Option {
	return fx.Module("storage",
		fx.Provide(ProvideServices),

		// 添加生命周期钩子确保在应用停止时关闭存储
		fx.Invoke(func(lc fx.Lifecycle, badgerStore storageInterface.BadgerStore, memoryStore storageInterface.MemoryStore, logger log.Logger) {
			lc.Append(fx.Hook{
				OnStop: func(ctx context.Context) error {
					logger.Info("正在关闭存储服务...")

					if memoryStore != nil {
						if err := memoryStore.Close(); err != nil {
							logger.Errorf("关闭内存缓存失败: %v", err)
						}
					}

					if badgerStore != nil {
						if err := badgerStore.Close(); err != nil {
							logger.Errorf("关闭BadgerDB存储失败: %v", err)
							return err
						}
					}

					logger.Info("存储服务已关闭")
					return nil
				},
			})
		}),
	)
}
