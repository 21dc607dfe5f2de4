// Package types 提供洛书执行引擎的核心领域类型定义
//
// 📋 **领域类型 (Domain Types)**
//
// 本包定义了资产登记核心所依赖的基础类型，专注于：
// - 哈希类型：32字节定长哈希及其确定性派生
// - 地址类型：带合约类型版本字节的Base58Check地址
// - 资产类型：资产登记记录及其余额表示
// - 调用上下文：单次合约调用的资源计量载体
//
// 🎯 **设计原则**
// - 确定性：所有派生运算在任意进程、任意时刻字节级一致
// - 值语义：类型以值或副本传递，避免共享可变状态
// - 封闭性：合约类型、错误类型均为封闭集合
package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// HashLength 哈希长度（32字节）
const HashLength = 32

var (
	// ErrInvalidHashLength 无效的哈希长度
	ErrInvalidHashLength = errors.New("invalid hash length")
	// ErrInvalidHashHex 无效的哈希十六进制表示
	ErrInvalidHashHex = errors.New("invalid hash hex string")
)

// Hash 32字节定长哈希值
//
// 资产标识、链标识、存储根均使用该类型。
// 零值表示"未设置"，与EmptyHash()（对空串求哈希的规范值）不同。
type Hash [HashLength]byte

// AssetID 资产唯一标识，由链标识与管理合约地址确定性派生
type AssetID = Hash

// ChainID 链标识，进程级常量，构造时注入且不再变更
type ChainID = Hash

// Digest 计算数据的Keccak-256哈希（确定性）
//
// 与密钥、随机数无关的纯函数：相同输入在任何实现下产生相同输出。
// 资产标识派生依赖这一性质，不得替换为带密钥或随机化的哈希。
func Digest(data []byte) Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)

	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// EmptyHash 返回规范的"空"哈希
//
// 定义为对空字节序列求Keccak-256。新登记资产的存储根初始化为该值。
func EmptyHash() Hash {
	return Digest(nil)
}

// NewHashFromBytes 从原始字节构造哈希
func NewHashFromBytes(data []byte) (Hash, error) {
	if len(data) != HashLength {
		return Hash{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidHashLength, HashLength, len(data))
	}

	var h Hash
	copy(h[:], data)
	return h, nil
}

// NewHashFromHex 从十六进制字符串构造哈希，允许0x前缀
func NewHashFromHex(s string) (Hash, error) {
	s = strings.TrimPrefix(s, "0x")

	raw, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, fmt.Errorf("%w: %v", ErrInvalidHashHex, err)
	}
	return NewHashFromBytes(raw)
}

// Bytes 返回哈希的字节副本
func (h Hash) Bytes() []byte {
	out := make([]byte, HashLength)
	copy(out, h[:])
	return out
}

// Hex 返回带0x前缀的十六进制表示
func (h Hash) Hex() string {
	return "0x" + hex.EncodeToString(h[:])
}

// String 实现fmt.Stringer
func (h Hash) String() string {
	return h.Hex()
}

// Equal 判断两个哈希是否相等
func (h Hash) Equal(other Hash) bool {
	return bytes.Equal(h[:], other[:])
}

// IsZero 判断是否为零值哈希（注意：零值不等于EmptyHash）
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// MarshalJSON 实现json.Marshaler，序列化为0x十六进制字符串
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Hex())
}

// UnmarshalJSON 实现json.Unmarshaler
func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := NewHashFromHex(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
