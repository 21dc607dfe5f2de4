package native

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/luoshu/v1/pkg/types"
)

// fixedAsset 资产记录的RLP线格式
//
// 字段顺序即编码顺序，不得调整：已落盘数据的兼容性依赖于此。
// 哈希与地址按原始字节编码，发行量按big.Int最小大端字节编码。
type fixedAsset struct {
	ID             []byte
	Name           string
	Symbol         string
	Supply         *big.Int
	ManageContract []byte
	StorageRoot    []byte
}

// encodeAsset 将资产记录编码为RLP字节
func encodeAsset(asset *types.Asset) ([]byte, error) {
	fixed := fixedAsset{
		ID:             asset.ID.Bytes(),
		Name:           asset.Name,
		Symbol:         asset.Symbol,
		Supply:         asset.Supply.BigInt(),
		ManageContract: asset.ManageContract.Bytes(),
		StorageRoot:    asset.StorageRoot.Bytes(),
	}

	raw, err := rlp.EncodeToBytes(&fixed)
	if err != nil {
		return nil, &FixedCodecError{Err: err}
	}
	return raw, nil
}

// decodeAsset 从RLP字节解码资产记录
func decodeAsset(raw []byte) (*types.Asset, error) {
	var fixed fixedAsset
	if err := rlp.DecodeBytes(raw, &fixed); err != nil {
		return nil, &FixedCodecError{Err: err}
	}

	id, err := types.NewHashFromBytes(fixed.ID)
	if err != nil {
		return nil, &FixedCodecError{Err: err}
	}

	storageRoot, err := types.NewHashFromBytes(fixed.StorageRoot)
	if err != nil {
		return nil, &FixedCodecError{Err: err}
	}

	manageContract, err := types.NewAddressFromBytes(fixed.ManageContract)
	if err != nil {
		return nil, &FixedCodecError{Err: err}
	}

	supply, err := types.NewBalance(fixed.Supply)
	if err != nil {
		return nil, &FixedCodecError{Err: err}
	}

	return &types.Asset{
		ID:             id,
		Name:           fixed.Name,
		Symbol:         fixed.Symbol,
		Supply:         supply,
		ManageContract: manageContract,
		StorageRoot:    storageRoot,
	}, nil
}
