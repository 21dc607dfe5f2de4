package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试地址构造与字节布局
func TestAddressBytesLayout(t *testing.T) {
	payload := make([]byte, AddressPayloadLength)
	for i := range payload {
		payload[i] = byte(i + 1)
	}

	addr, err := NewContractAddress(ContractTypeAsset, payload)
	require.NoError(t, err)

	raw := addr.Bytes()
	require.Len(t, raw, AddressLength)

	// 版本字节在前，负载在后
	assert.Equal(t, byte(ContractTypeAsset), raw[0])
	assert.Equal(t, payload, raw[1:])
	assert.Equal(t, ContractTypeAsset, addr.ContractType())
}

// 测试Base58Check字符串往返
func TestAddressStringRoundTrip(t *testing.T) {
	for _, contractType := range []ContractType{ContractTypeAsset, ContractTypeApp, ContractTypeLibrary} {
		payload := make([]byte, AddressPayloadLength)
		payload[0] = byte(contractType)

		addr, err := NewContractAddress(contractType, payload)
		require.NoError(t, err)

		parsed, err := ParseAddress(addr.String())
		require.NoError(t, err)
		assert.True(t, addr.Equal(parsed))
		assert.Equal(t, contractType, parsed.ContractType())
	}
}

// 测试21字节原始表示往返
func TestAddressFromBytesRoundTrip(t *testing.T) {
	payload := make([]byte, AddressPayloadLength)
	payload[19] = 0xff

	addr, err := NewContractAddress(ContractTypeApp, payload)
	require.NoError(t, err)

	parsed, err := NewAddressFromBytes(addr.Bytes())
	require.NoError(t, err)
	assert.True(t, addr.Equal(parsed))
}

// 测试非法输入
func TestAddressInvalidInput(t *testing.T) {
	// 非法合约类型
	_, err := NewContractAddress(ContractType(0x00), make([]byte, AddressPayloadLength))
	assert.ErrorIs(t, err, ErrInvalidContractType)

	// 非法负载长度
	_, err = NewContractAddress(ContractTypeAsset, make([]byte, 19))
	assert.ErrorIs(t, err, ErrInvalidAddressLength)

	// 非法编码
	_, err = ParseAddress("not-a-valid-address!!!")
	assert.ErrorIs(t, err, ErrInvalidAddressEncoding)

	// 校验和错误（篡改最后一个字符）
	addr, err := NewContractAddress(ContractTypeAsset, make([]byte, AddressPayloadLength))
	require.NoError(t, err)
	s := addr.String()
	tampered := s[:len(s)-1] + "1"
	if tampered == s {
		tampered = s[:len(s)-1] + "2"
	}
	_, err = ParseAddress(tampered)
	assert.Error(t, err)
}

// 测试JSON序列化往返
func TestAddressJSON(t *testing.T) {
	addr, err := NewContractAddress(ContractTypeLibrary, make([]byte, AddressPayloadLength))
	require.NoError(t, err)

	raw, err := json.Marshal(addr)
	require.NoError(t, err)

	var decoded Address
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, addr.Equal(decoded))
}

// 测试合约类型可读名称
func TestContractTypeString(t *testing.T) {
	assert.Equal(t, "asset", ContractTypeAsset.String())
	assert.Equal(t, "app", ContractTypeApp.String())
	assert.Equal(t, "library", ContractTypeLibrary.String())
	assert.Equal(t, "unknown(0x7f)", ContractType(0x7f).String())
}
