// luoshu 节点与资产登记命令行工具
package main

func main() {
	Execute()
}
