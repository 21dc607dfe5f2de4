package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
)

// 地址系统配置常量
const (
	// AddressPayloadLength 地址负载长度（20字节）
	AddressPayloadLength = 20
	// AddressLength 地址原始字节长度（1字节合约类型 + 20字节负载）
	AddressLength = AddressPayloadLength + 1
)

// ContractType 合约类型标签，编码在地址的版本字节中
type ContractType byte

const (
	// ContractTypeAsset 资产管理合约（唯一允许登记资产的地址类型）
	ContractTypeAsset ContractType = 0x20
	// ContractTypeApp 应用合约
	ContractTypeApp ContractType = 0x21
	// ContractTypeLibrary 库合约
	ContractTypeLibrary ContractType = 0x22
)

var (
	// ErrInvalidAddressLength 无效的地址长度
	ErrInvalidAddressLength = errors.New("invalid address length")
	// ErrInvalidContractType 无效的合约类型版本字节
	ErrInvalidContractType = errors.New("invalid contract type")
	// ErrInvalidAddressEncoding 无效的地址编码（Base58Check解码失败）
	ErrInvalidAddressEncoding = errors.New("invalid address encoding")
)

// IsValid 判断合约类型是否属于封闭集合
func (t ContractType) IsValid() bool {
	switch t {
	case ContractTypeAsset, ContractTypeApp, ContractTypeLibrary:
		return true
	default:
		return false
	}
}

// String 返回合约类型的可读名称
func (t ContractType) String() string {
	switch t {
	case ContractTypeAsset:
		return "asset"
	case ContractTypeApp:
		return "app"
	case ContractTypeLibrary:
		return "library"
	default:
		return fmt.Sprintf("unknown(0x%02x)", byte(t))
	}
}

// Address 合约地址
//
// 由1字节合约类型版本与20字节负载组成，字符串形式采用Base58Check编码
// （版本字节即合约类型），与比特币风格地址的推导方式一致。
type Address struct {
	contractType ContractType
	payload      [AddressPayloadLength]byte
}

// NewContractAddress 从合约类型与20字节负载构造地址
func NewContractAddress(contractType ContractType, payload []byte) (Address, error) {
	if !contractType.IsValid() {
		return Address{}, fmt.Errorf("%w: 0x%02x", ErrInvalidContractType, byte(contractType))
	}
	if len(payload) != AddressPayloadLength {
		return Address{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAddressLength, AddressPayloadLength, len(payload))
	}

	addr := Address{contractType: contractType}
	copy(addr.payload[:], payload)
	return addr, nil
}

// NewAddressFromBytes 从21字节原始表示（版本+负载）构造地址
func NewAddressFromBytes(raw []byte) (Address, error) {
	if len(raw) != AddressLength {
		return Address{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidAddressLength, AddressLength, len(raw))
	}
	return NewContractAddress(ContractType(raw[0]), raw[1:])
}

// ParseAddress 解析Base58Check字符串形式的地址
func ParseAddress(s string) (Address, error) {
	payload, version, err := base58.CheckDecode(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrInvalidAddressEncoding, err)
	}
	return NewContractAddress(ContractType(version), payload)
}

// ContractType 返回地址携带的合约类型标签
func (a Address) ContractType() ContractType {
	return a.contractType
}

// Bytes 返回地址的21字节原始表示（版本字节在前）
//
// 资产标识派生使用该表示，字节顺序不得变更。
func (a Address) Bytes() []byte {
	out := make([]byte, 0, AddressLength)
	out = append(out, byte(a.contractType))
	out = append(out, a.payload[:]...)
	return out
}

// Payload 返回20字节负载副本
func (a Address) Payload() []byte {
	out := make([]byte, AddressPayloadLength)
	copy(out, a.payload[:])
	return out
}

// String 返回Base58Check编码的地址字符串
func (a Address) String() string {
	return base58.CheckEncode(a.payload[:], byte(a.contractType))
}

// Equal 判断两个地址是否相等
func (a Address) Equal(other Address) bool {
	return a.contractType == other.contractType && bytes.Equal(a.payload[:], other.payload[:])
}

// MarshalJSON 实现json.Marshaler，序列化为Base58Check字符串
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON 实现json.Unmarshaler
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
