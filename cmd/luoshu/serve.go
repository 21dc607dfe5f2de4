package main

import (
	"github.com/luoshu/v1/internal/app"
	"github.com/spf13/cobra"
)

// serve命令标志
var serveListenAddr string

// serveCmd 节点服务命令
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动带HTTP API的节点服务",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveListenAddr, "listen", ":8545", "HTTP监听地址")
	rootCmd.AddCommand(serveCmd)
}

// runServe 启动节点应用并阻塞直至收到退出信号
func runServe(cmd *cobra.Command, args []string) error {
	application := app.New(app.Options{
		DataDir:     globalFlags.DataDir,
		ListenAddr:  serveListenAddr,
		ChainID:     globalFlags.ChainID,
		CyclesPrice: globalFlags.CyclesPrice,
		CyclesLimit: globalFlags.CyclesLimit,
		LogLevel:    globalFlags.LogLevel,
	})

	application.Run()
	return nil
}
