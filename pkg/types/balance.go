package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNegativeBalance 余额不允许为负
	ErrNegativeBalance = errors.New("balance must be non-negative")
	// ErrInvalidBalanceString 无效的余额十进制表示
	ErrInvalidBalanceString = errors.New("invalid balance decimal string")
)

// Balance 任意精度的非负余额
//
// 内部以big.Int存储；登记时固定，本核心此后不再修改。
// 零值可直接使用，等价于余额0。
type Balance struct {
	value *big.Int
}

// NewBalance 从big.Int构造余额，负值返回错误
func NewBalance(value *big.Int) (Balance, error) {
	if value == nil {
		return Balance{}, nil
	}
	if value.Sign() < 0 {
		return Balance{}, fmt.Errorf("%w: %s", ErrNegativeBalance, value.String())
	}
	return Balance{value: new(big.Int).Set(value)}, nil
}

// NewBalanceFromUint64 从uint64构造余额
func NewBalanceFromUint64(value uint64) Balance {
	return Balance{value: new(big.Int).SetUint64(value)}
}

// ParseBalance 解析十进制字符串形式的余额
func ParseBalance(s string) (Balance, error) {
	value, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Balance{}, fmt.Errorf("%w: %q", ErrInvalidBalanceString, s)
	}
	return NewBalance(value)
}

// BigInt 返回余额的big.Int副本
func (b Balance) BigInt() *big.Int {
	if b.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(b.value)
}

// String 返回十进制字符串表示
func (b Balance) String() string {
	if b.value == nil {
		return "0"
	}
	return b.value.String()
}

// Cmp 比较两个余额，语义同big.Int.Cmp
func (b Balance) Cmp(other Balance) int {
	return b.BigInt().Cmp(other.BigInt())
}

// IsZero 判断余额是否为0
func (b Balance) IsZero() bool {
	return b.value == nil || b.value.Sign() == 0
}

// MarshalJSON 实现json.Marshaler，序列化为十进制字符串
//
// 任意精度数值不适合JSON number表示，统一使用字符串。
func (b Balance) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON 实现json.Unmarshaler
func (b *Balance) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseBalance(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
