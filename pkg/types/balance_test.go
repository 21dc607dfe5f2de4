package types

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试余额构造
func TestBalanceConstruction(t *testing.T) {
	// 零值可用
	var zero Balance
	assert.True(t, zero.IsZero())
	assert.Equal(t, "0", zero.String())

	// uint64构造
	b := NewBalanceFromUint64(1000)
	assert.Equal(t, "1000", b.String())

	// 负值拒绝
	_, err := NewBalance(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrNegativeBalance)

	// nil视为零
	fromNil, err := NewBalance(nil)
	require.NoError(t, err)
	assert.True(t, fromNil.IsZero())
}

// 测试超出uint64范围的任意精度余额
func TestBalanceArbitraryPrecision(t *testing.T) {
	huge, ok := new(big.Int).SetString("340282366920938463463374607431768211456", 10) // 2^128
	require.True(t, ok)

	b, err := NewBalance(huge)
	require.NoError(t, err)
	assert.Equal(t, huge.String(), b.String())
	assert.Equal(t, 0, b.BigInt().Cmp(huge))
}

// 测试BigInt返回副本而非内部引用
func TestBalanceBigIntCopy(t *testing.T) {
	b := NewBalanceFromUint64(42)

	inner := b.BigInt()
	inner.SetInt64(999)

	assert.Equal(t, "42", b.String())
}

// 测试十进制字符串解析
func TestParseBalance(t *testing.T) {
	b, err := ParseBalance("123456789")
	require.NoError(t, err)
	assert.Equal(t, "123456789", b.String())

	_, err = ParseBalance("not-a-number")
	assert.ErrorIs(t, err, ErrInvalidBalanceString)

	_, err = ParseBalance("-5")
	assert.ErrorIs(t, err, ErrNegativeBalance)
}

// 测试JSON序列化往返（十进制字符串表示）
func TestBalanceJSON(t *testing.T) {
	b := NewBalanceFromUint64(7777)

	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, `"7777"`, string(raw))

	var decoded Balance
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 0, b.Cmp(decoded))
}
