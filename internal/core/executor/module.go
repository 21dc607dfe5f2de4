// Package executor 提供执行引擎的模块装配
package executor

import (
	executorconfig "github.com/luoshu/v1/internal/config/executor"
	"github.com/luoshu/v1/internal/core/executor/native"
	"github.com/luoshu/v1/internal/core/executor/state"
	"github.com/luoshu/v1/pkg/interfaces/execution"
	"github.com/luoshu/v1/pkg/interfaces/infrastructure/log"
	storageInterface "github.com/luoshu/v1/pkg/interfaces/infrastructure/storage"
	"go.uber.org/fx"
)

// ModuleParams 定义执行引擎模块的依赖参数
type ModuleParams struct {
	fx.In

	Config      *executorconfig.Config       // 执行引擎配置
	BadgerStore storageInterface.BadgerStore // 持久化存储
	MemoryStore storageInterface.MemoryStore `optional:"true"` // 热读缓存（可选）
	Logger      log.Logger                   // 日志记录器
}

// ModuleOutput 定义执行引擎模块的输出结构
type ModuleOutput struct {
	fx.Out

	StateAdapter  execution.StateAdapter  // 世界状态适配器
	AssetContract execution.AssetContract // 资产登记合约
}

// ProvideServices 构建执行引擎服务
//
// 状态适配器与资产合约共享同一会话：合约暂存写入，
// 外部调用方（API层或CLI）决定提交或丢弃。
func ProvideServices(params ModuleParams) ModuleOutput {
	adapter := state.NewGeneralStateAdapter(params.BadgerStore, params.MemoryStore, params.Logger)
	registry := native.NewAssetRegistry(params.Config.GetChainID(), adapter, params.Logger)

	return ModuleOutput{
		StateAdapter:  adapter,
		AssetContract: registry,
	}
}

// Module 返回执行引擎模块
func Module() fx.Option {
	return fx.Module("executor",
		fx.Provide(ProvideServices),
	)
}
