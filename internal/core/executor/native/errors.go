package native

import (
	"fmt"

	"github.com/luoshu/v1/pkg/types"
)

// 资产登记合约的错误集合（封闭集合，每类错误携带最小诊断载荷）。
// 所有错误对本核心而言均不可重试：调用方需变更输入或上下文后重新发起调用。

// InvalidAddressError 目标地址不是资产管理合约地址
type InvalidAddressError struct {
	Address types.Address
}

// Error 实现error接口
func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("invalid address %s: contract type is %s, expected asset",
		e.Address, e.Address.ContractType())
}

// AssetExistsError 派生出的资产标识已有登记记录（重复登记）
type AssetExistsError struct {
	ID types.AssetID
}

// Error 实现error接口
func (e *AssetExistsError) Error() string {
	return fmt.Sprintf("asset id %s already exists", e.ID)
}

// NotFoundError 查询的资产标识不存在
type NotFoundError struct {
	ID types.AssetID
}

// Error 实现error接口
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("asset id %s not found", e.ID)
}

// FixedCodecError 资产记录编解码失败
//
// 读回已存储记录时解码失败意味着数据损坏或模式不匹配，
// 原始错误通过Unwrap暴露。
type FixedCodecError struct {
	Err error
}

// Error 实现error接口
func (e *FixedCodecError) Error() string {
	return fmt.Sprintf("fixed codec: %v", e.Err)
}

// Unwrap 返回底层编解码错误
func (e *FixedCodecError) Unwrap() error {
	return e.Err
}
