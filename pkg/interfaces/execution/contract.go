package execution

import (
	"github.com/luoshu/v1/pkg/types"
)

// AssetContract 资产登记合约接口
//
// 资产的登记与查询中心，只做两件事：
// 1. 为资产生成全局唯一标识并将资产记录写入链上状态
// 2. 按资产标识查询资产的基础信息
type AssetContract interface {
	// Register 登记一个资产
	//
	// 资产标识派生规则：AssetID = Hash(ChainID ++ 管理合约地址)。
	// 登记成功后世界状态不会改变，直到外部框架调用状态适配器的Commit。
	Register(ictx *types.InvokeContext, address types.Address, name, symbol string, supply types.Balance) (*types.Asset, error)

	// GetAsset 按资产标识查询资产记录（纯读取，不消耗cycles、不修改状态）
	GetAsset(ictx *types.InvokeContext, id types.AssetID) (*types.Asset, error)
}
