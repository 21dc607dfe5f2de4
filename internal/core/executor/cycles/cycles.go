// Package cycles 提供合约调用的计算成本计量
//
// 📋 **Cycles计量 (Cycles Metering)**
//
// 本包定义了按动作标签计费的cycles计量器，专注于：
// - 动作基础成本表：封闭的动作标签集合及其基础开销
// - 增量计费：成本 = 基础开销 × 单价，就地累加到调用上下文
// - 上限保护：累加会超过上限时整体失败，不做部分扣费
//
// 🎯 **设计原则**
// - 确定性：同一动作、同一单价在任何环境下计费一致
// - 无部分扣费：超限失败时已用量保持原值，由调用方决定会话去留
package cycles

import (
	"fmt"
	"math"
)

// Action 计费动作标签
type Action string

const (
	// ActionBankRegister 资产登记
	ActionBankRegister Action = "BankRegister"
	// ActionContractDeploy 合约部署
	ActionContractDeploy Action = "ContractDeploy"
	// ActionContractCall 合约调用
	ActionContractCall Action = "ContractCall"
	// ActionStoreWrite 状态写入（按次）
	ActionStoreWrite Action = "StoreWrite"
)

// baseCosts 动作基础开销表（单位：cycle，未乘单价）
var baseCosts = map[Action]uint64{
	ActionBankRegister:   21_000,
	ActionContractDeploy: 60_000,
	ActionContractCall:   10_000,
	ActionStoreWrite:     5_000,
}

// BaseCost 返回动作的基础开销，未知动作返回false
func BaseCost(action Action) (uint64, bool) {
	cost, ok := baseCosts[action]
	return cost, ok
}

// UnknownActionError 未知的计费动作
type UnknownActionError struct {
	Action Action
}

// Error 实现error接口
func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown cycles action %q", e.Action)
}

// LimitExceededError cycles超限错误
//
// 计量失败时已用量不变（无部分扣费），错误携带完整的计量现场。
type LimitExceededError struct {
	Action Action // 触发超限的动作
	Used   uint64 // 失败前的已用量
	Cost   uint64 // 本次动作的计费量
	Limit  uint64 // cycles硬上限
}

// Error 实现error接口
func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("cycles limit exceeded: action=%s used=%d cost=%d limit=%d",
		e.Action, e.Used, e.Cost, e.Limit)
}

// Consume 按动作计费并就地累加已用量
//
// 成本 = 基础开销 × 单价。若 used + 成本 > limit，返回LimitExceededError
// 且不修改used；否则将成本累加到used。乘法与加法均做溢出保护，
// 溢出按超限处理。
func Consume(action Action, price uint64, used *uint64, limit uint64) error {
	base, ok := baseCosts[action]
	if !ok {
		return &UnknownActionError{Action: action}
	}

	// 乘法溢出保护
	if price != 0 && base > math.MaxUint64/price {
		return &LimitExceededError{Action: action, Used: *used, Cost: math.MaxUint64, Limit: limit}
	}
	cost := base * price

	// 加法溢出与上限检查合并：cost > limit - *used 即超限
	if *used > limit || cost > limit-*used {
		return &LimitExceededError{Action: action, Used: *used, Cost: cost, Limit: limit}
	}

	*used += cost
	return nil
}
