package main

import (
	"encoding/json"
	"fmt"
	"os"

	executorconfig "github.com/luoshu/v1/internal/config/executor"
	logconfig "github.com/luoshu/v1/internal/config/log"
	badgerconfig "github.com/luoshu/v1/internal/config/storage/badger"
	"github.com/luoshu/v1/internal/core/executor/native"
	"github.com/luoshu/v1/internal/core/executor/state"
	logimpl "github.com/luoshu/v1/internal/core/infrastructure/log"
	badgerstore "github.com/luoshu/v1/internal/core/infrastructure/storage/badger"
	"github.com/luoshu/v1/pkg/types"
	"github.com/spf13/cobra"
)

// assetCmd 资产子命令
var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "资产登记与查询",
}

// assetRegisterCmd 资产登记命令
var assetRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "登记一个资产并提交到本地世界状态",
	RunE:  runAssetRegister,
}

// assetGetCmd 资产查询命令
var assetGetCmd = &cobra.Command{
	Use:   "get <asset-id>",
	Short: "按资产标识查询资产记录",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssetGet,
}

// 登记命令标志
var (
	registerAddress string
	registerName    string
	registerSymbol  string
	registerSupply  string
)

func init() {
	assetRegisterCmd.Flags().StringVar(&registerAddress, "address", "", "管理合约地址 (Base58Check，合约类型必须为asset)")
	assetRegisterCmd.Flags().StringVar(&registerName, "name", "", "资产名称")
	assetRegisterCmd.Flags().StringVar(&registerSymbol, "symbol", "", "资产符号")
	assetRegisterCmd.Flags().StringVar(&registerSupply, "supply", "0", "初始发行量 (十进制)")
	_ = assetRegisterCmd.MarkFlagRequired("address")
	_ = assetRegisterCmd.MarkFlagRequired("name")
	_ = assetRegisterCmd.MarkFlagRequired("symbol")

	assetCmd.AddCommand(assetRegisterCmd)
	assetCmd.AddCommand(assetGetCmd)
	rootCmd.AddCommand(assetCmd)
}

// buildLocalRegistry 构建面向本地数据目录的登记合约栈
//
// CLI路径不经过fx：单命令进程直接装配，用完即关。
func buildLocalRegistry() (*native.AssetRegistry, *state.GeneralStateAdapter, *executorconfig.Config, func(), error) {
	logger, err := logimpl.New(logconfig.New(&logconfig.LogOptions{Level: globalFlags.LogLevel, Console: false}))
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("初始化日志失败: %w", err)
	}

	execCfg, err := executorconfig.New(&executorconfig.ExecutorOptions{
		ChainID:     globalFlags.ChainID,
		CyclesPrice: globalFlags.CyclesPrice,
		CyclesLimit: globalFlags.CyclesLimit,
	})
	if err != nil {
		return nil, nil, nil, nil, err
	}

	store, err := badgerstore.New(badgerconfig.New(globalFlags.DataDir), logger)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	adapter := state.NewGeneralStateAdapter(store, nil, logger)
	registry := native.NewAssetRegistry(execCfg.GetChainID(), adapter, logger)

	cleanup := func() {
		if err := store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "关闭存储失败: %v\n", err)
		}
	}
	return registry, adapter, execCfg, cleanup, nil
}

// runAssetRegister 执行资产登记
func runAssetRegister(cmd *cobra.Command, args []string) error {
	address, err := types.ParseAddress(registerAddress)
	if err != nil {
		return err
	}

	supply, err := types.ParseBalance(registerSupply)
	if err != nil {
		return err
	}

	registry, adapter, execCfg, cleanup, err := buildLocalRegistry()
	if err != nil {
		return err
	}
	defer cleanup()

	ictx := &types.InvokeContext{
		ChainID:     execCfg.GetChainID(),
		Caller:      address,
		CyclesPrice: execCfg.GetCyclesPrice(),
		CyclesLimit: execCfg.GetCyclesLimit(),
	}

	asset, err := registry.Register(ictx, address, registerName, registerSymbol, supply)
	if err != nil {
		adapter.Discard()
		return err
	}

	if err := adapter.Commit(); err != nil {
		return fmt.Errorf("提交世界状态失败: %w", err)
	}

	return printJSON(cmd, map[string]interface{}{
		"asset":       asset,
		"cycles_used": ictx.CyclesUsed,
	})
}

// runAssetGet 执行资产查询
func runAssetGet(cmd *cobra.Command, args []string) error {
	id, err := types.NewHashFromHex(args[0])
	if err != nil {
		return err
	}

	registry, _, execCfg, cleanup, err := buildLocalRegistry()
	if err != nil {
		return err
	}
	defer cleanup()

	ictx := &types.InvokeContext{
		ChainID:     execCfg.GetChainID(),
		CyclesPrice: execCfg.GetCyclesPrice(),
		CyclesLimit: execCfg.GetCyclesLimit(),
	}

	asset, err := registry.GetAsset(ictx, id)
	if err != nil {
		return err
	}

	return printJSON(cmd, asset)
}

// printJSON 以缩进JSON输出结果
func printJSON(cmd *cobra.Command, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(raw))
	return nil
}
