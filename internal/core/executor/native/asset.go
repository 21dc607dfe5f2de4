// Package native 提供执行引擎的原生合约实现
//
// 📋 **资产登记合约 (Asset Registry Contract)**
//
// 资产的登记和查询中心，只做两件事：
// 1. 为资产生成全局唯一标识，并将资产信息写入链上状态
// 2. 按资产标识查询资产的基础信息
//
// 🎯 **设计原则**
// - 确定性派生：AssetID = Hash(ChainID ++ 管理合约地址)，同链同地址必然碰撞，
//   碰撞本身就是唯一性检查（不存储独立的"已登记"标志）
// - 暂存写入：登记成功后世界状态不变，直到外部框架调用状态适配器的Commit
// - 无内部状态：合约自身跨调用无任何字段变化，所有状态在外部存储与调用上下文中
package native

import (
	"time"

	"github.com/luoshu/v1/internal/core/executor/cycles"
	"github.com/luoshu/v1/pkg/interfaces/execution"
	"github.com/luoshu/v1/pkg/interfaces/infrastructure/log"
	"github.com/luoshu/v1/pkg/types"
)

// 确保AssetRegistry实现了execution.AssetContract接口
var _ execution.AssetContract = (*AssetRegistry)(nil)

// AssetRegistry 资产登记合约
//
// 自身不持有任何持久化存储，只持有状态适配器的共享句柄和
// 不可变的链标识。跨调用无内部状态。
type AssetRegistry struct {
	chainID types.ChainID
	state   execution.StateAdapter
	logger  log.Logger
}

// NewAssetRegistry 创建资产登记合约实例
func NewAssetRegistry(chainID types.ChainID, state execution.StateAdapter, logger log.Logger) *AssetRegistry {
	return &AssetRegistry{
		chainID: chainID,
		state:   state,
		logger:  logger,
	}
}

// Register 登记一个资产
//
// 流程：校验地址类型 → 派生资产标识 → 唯一性检查 → 暂存写入 → cycles计费。
// 地址类型不符或标识已存在时立即失败，不触碰状态、不计费
// （重复登记的检测对调用方免费）。cycles超限时计量器错误原样透传，
// 已暂存的写入保持在未提交会话中，由外部框架决定丢弃整个会话
// （本核心没有补偿动作，不做局部回滚）。
func (r *AssetRegistry) Register(ictx *types.InvokeContext, address types.Address, name, symbol string, supply types.Balance) (*types.Asset, error) {
	start := time.Now()
	defer func() {
		registerDuration.Observe(time.Since(start).Seconds())
	}()

	if address.ContractType() != types.ContractTypeAsset {
		registerTotal.WithLabelValues("invalid_address").Inc()
		return nil, &InvalidAddressError{Address: address}
	}

	assetID := types.DeriveAssetID(r.chainID, address)

	// 虽然碰撞概率很小，仍然必须检查
	exists, err := r.state.Contains(execution.SchemaAsset, assetID.Bytes())
	if err != nil {
		registerTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if exists {
		registerTotal.WithLabelValues("exists").Inc()
		return nil, &AssetExistsError{ID: assetID}
	}

	asset := types.Asset{
		ID:             assetID,
		Name:           name,
		Symbol:         symbol,
		Supply:         supply,
		ManageContract: address,
		StorageRoot:    types.EmptyHash(),
	}

	raw, err := encodeAsset(&asset)
	if err != nil {
		registerTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if err := r.state.InsertCache(execution.SchemaAsset, assetID.Bytes(), raw); err != nil {
		registerTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	// 在副本上计费，成功后整体写回，保证失败路径不产生部分扣费
	used := ictx.CyclesUsed
	if err := cycles.Consume(cycles.ActionBankRegister, ictx.CyclesPrice, &used, ictx.CyclesLimit); err != nil {
		registerTotal.WithLabelValues("cycles_limit").Inc()
		return nil, err
	}
	ictx.CyclesUsed = used
	registerTotal.WithLabelValues("success").Inc()

	r.logger.Infof("资产登记完成: id=%s name=%s symbol=%s supply=%s", assetID, name, symbol, supply)

	result := asset
	return &result, nil
}

// GetAsset 按资产标识查询资产记录
//
// 纯读取：不消耗cycles、不修改状态。上下文参数仅为与其他合约
// 操作保持签名一致而存在。
func (r *AssetRegistry) GetAsset(ictx *types.InvokeContext, id types.AssetID) (*types.Asset, error) {
	raw, err := r.state.Get(execution.SchemaAsset, id.Bytes())
	if err != nil {
		queryTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if raw == nil {
		queryTotal.WithLabelValues("not_found").Inc()
		return nil, &NotFoundError{ID: id}
	}

	asset, err := decodeAsset(raw)
	if err != nil {
		queryTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	queryTotal.WithLabelValues("success").Inc()
	return asset, nil
}
