package types

// Asset 资产登记记录
//
// 由资产登记合约创建一次，本核心此后不更新、不删除。
// 提交前仅存在于暂存层，对会话外的读取不可见。
type Asset struct {
	ID             AssetID `json:"id"`              // 资产唯一标识，全局唯一且不可变
	Name           string  `json:"name"`            // 资产名称（调用方提供，本核心不校验）
	Symbol         string  `json:"symbol"`          // 资产符号（调用方提供，本核心不校验）
	Supply         Balance `json:"supply"`          // 初始发行量，登记时固定
	ManageContract Address `json:"manage_contract"` // 管理合约地址，合约类型必须为asset
	StorageRoot    Hash    `json:"storage_root"`    // 资产私有子状态根，初始为规范空哈希
}

// DeriveAssetID 由链标识与管理合约地址派生资产标识
//
// AssetID = Keccak256(ChainID字节 ++ 地址字节)，链标识在前、地址在后，
// 拼接顺序与字节序不得变更（跨实现兼容性依赖于此）。同链同地址的两次
// 派生必然碰撞，这正是全局唯一性检查的实现方式。
func DeriveAssetID(chainID ChainID, address Address) AssetID {
	data := make([]byte, 0, HashLength+AddressLength)
	data = append(data, chainID.Bytes()...)
	data = append(data, address.Bytes()...)
	return Digest(data)
}
