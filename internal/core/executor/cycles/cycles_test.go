package cycles

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试正常计费：成本 = 基础开销 × 单价，就地累加
func TestConsumeCharges(t *testing.T) {
	base, ok := BaseCost(ActionBankRegister)
	require.True(t, ok)

	used := uint64(100)
	err := Consume(ActionBankRegister, 2, &used, math.MaxUint64)
	require.NoError(t, err)

	assert.Equal(t, 100+base*2, used)

	// 连续计费继续累加
	err = Consume(ActionBankRegister, 2, &used, math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, 100+base*4, used)
}

// 测试超限失败：不做部分扣费
func TestConsumeLimitExceeded(t *testing.T) {
	base, ok := BaseCost(ActionBankRegister)
	require.True(t, ok)

	used := uint64(10)
	limit := base + 9 // 差1个cycle

	err := Consume(ActionBankRegister, 1, &used, limit)
	require.Error(t, err)

	var limitErr *LimitExceededError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, ActionBankRegister, limitErr.Action)
	assert.Equal(t, uint64(10), limitErr.Used)
	assert.Equal(t, base, limitErr.Cost)
	assert.Equal(t, limit, limitErr.Limit)

	// 已用量保持原值
	assert.Equal(t, uint64(10), used)
}

// 测试恰好达到上限：允许
func TestConsumeExactLimit(t *testing.T) {
	base, ok := BaseCost(ActionBankRegister)
	require.True(t, ok)

	used := uint64(0)
	err := Consume(ActionBankRegister, 1, &used, base)
	require.NoError(t, err)
	assert.Equal(t, base, used)
}

// 测试未知动作
func TestConsumeUnknownAction(t *testing.T) {
	used := uint64(0)
	err := Consume(Action("NoSuchAction"), 1, &used, math.MaxUint64)

	var unknownErr *UnknownActionError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, uint64(0), used)
}

// 测试乘法溢出按超限处理
func TestConsumeOverflow(t *testing.T) {
	used := uint64(0)
	err := Consume(ActionBankRegister, math.MaxUint64, &used, math.MaxUint64)

	var limitErr *LimitExceededError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, uint64(0), used)
}

// 测试价格为0时计费为0
func TestConsumeZeroPrice(t *testing.T) {
	used := uint64(5)
	err := Consume(ActionBankRegister, 0, &used, 5)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), used)
}
