// Package handlers 提供HTTP API处理器
//
// asset.go 实现资产登记相关的HTTP API端点
//
// 📋 **支持的API端点**
// - POST /assets/register - 登记资产
// - GET  /assets/:id      - 按资产标识查询资产
//
// 注意：登记端点在合约调用成功后提交状态会话，失败时整体丢弃会话
// （包括cycles超限时已暂存的写入——核心不做局部回滚，会话去留由本层决定）。
package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	executorconfig "github.com/luoshu/v1/internal/config/executor"
	"github.com/luoshu/v1/internal/core/executor/cycles"
	"github.com/luoshu/v1/internal/core/executor/native"
	"github.com/luoshu/v1/pkg/interfaces/execution"
	"github.com/luoshu/v1/pkg/interfaces/infrastructure/log"
	"github.com/luoshu/v1/pkg/types"
)

// ==================== 🎯 请求响应结构定义 ====================

// RegisterAssetRequest 资产登记请求
type RegisterAssetRequest struct {
	Address string `json:"address" binding:"required"` // 管理合约地址（Base58Check）
	Name    string `json:"name" binding:"required"`    // 资产名称
	Symbol  string `json:"symbol" binding:"required"`  // 资产符号
	Supply  string `json:"supply" binding:"required"`  // 初始发行量（十进制字符串）
}

// RegisterAssetResponse 资产登记响应
type RegisterAssetResponse struct {
	Success    bool         `json:"success"`
	Asset      *types.Asset `json:"asset,omitempty"`
	CyclesUsed uint64       `json:"cycles_used"`
	Message    string       `json:"message,omitempty"`
}

// GetAssetResponse 资产查询响应
type GetAssetResponse struct {
	Success bool         `json:"success"`
	Asset   *types.Asset `json:"asset,omitempty"`
	Message string       `json:"message,omitempty"`
}

// AssetHandler 资产登记API处理器
//
// 状态适配器是单写者会话，gin并发处理请求，因此合约调用与
// 会话的提交/丢弃必须在互斥锁内整体完成：一次登记的
// 暂存→提交（或丢弃）对其他请求原子可见。
type AssetHandler struct {
	contract execution.AssetContract
	state    execution.StateAdapter
	config   *executorconfig.Config
	logger   log.Logger

	mu sync.Mutex // 串行化对共享状态会话的访问
}

// NewAssetHandler 创建资产API处理器
func NewAssetHandler(contract execution.AssetContract, state execution.StateAdapter, config *executorconfig.Config, logger log.Logger) *AssetHandler {
	return &AssetHandler{
		contract: contract,
		state:    state,
		config:   config,
		logger:   logger,
	}
}

// RegisterRoutes 注册资产相关路由
func (h *AssetHandler) RegisterRoutes(router gin.IRouter) {
	assets := router.Group("/assets")
	{
		assets.POST("/register", h.RegisterAsset)
		assets.GET("/:id", h.GetAsset)
	}
}

// RegisterAsset 处理资产登记请求
func (h *AssetHandler) RegisterAsset(c *gin.Context) {
	var req RegisterAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, RegisterAssetResponse{Success: false, Message: err.Error()})
		return
	}

	address, err := types.ParseAddress(req.Address)
	if err != nil {
		c.JSON(http.StatusBadRequest, RegisterAssetResponse{Success: false, Message: err.Error()})
		return
	}

	supply, err := types.ParseBalance(req.Supply)
	if err != nil {
		c.JSON(http.StatusBadRequest, RegisterAssetResponse{Success: false, Message: err.Error()})
		return
	}

	ictx := &types.InvokeContext{
		ChainID:     h.config.GetChainID(),
		Caller:      address,
		CyclesPrice: h.config.GetCyclesPrice(),
		CyclesLimit: h.config.GetCyclesLimit(),
	}

	// 登记与提交/丢弃必须原子完成，失败请求的丢弃不得波及其他请求
	h.mu.Lock()
	asset, err := h.contract.Register(ictx, address, req.Name, req.Symbol, supply)
	if err != nil {
		// 登记失败时整体丢弃会话，保证失败的登记不留下可用记录
		h.state.Discard()
		h.mu.Unlock()
		c.JSON(registerErrorStatus(err), RegisterAssetResponse{
			Success:    false,
			CyclesUsed: ictx.CyclesUsed,
			Message:    err.Error(),
		})
		return
	}

	commitErr := h.state.Commit()
	h.mu.Unlock()

	if commitErr != nil {
		h.logger.Errorf("资产登记提交失败: %v", commitErr)
		c.JSON(http.StatusInternalServerError, RegisterAssetResponse{Success: false, Message: commitErr.Error()})
		return
	}

	c.JSON(http.StatusOK, RegisterAssetResponse{
		Success:    true,
		Asset:      asset,
		CyclesUsed: ictx.CyclesUsed,
	})
}

// GetAsset 处理资产查询请求
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, err := types.NewHashFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, GetAssetResponse{Success: false, Message: err.Error()})
		return
	}

	ictx := &types.InvokeContext{
		ChainID:     h.config.GetChainID(),
		CyclesPrice: h.config.GetCyclesPrice(),
		CyclesLimit: h.config.GetCyclesLimit(),
	}

	// 查询同样经过会话锁：读路径会触碰暂存层
	h.mu.Lock()
	asset, err := h.contract.GetAsset(ictx, id)
	h.mu.Unlock()

	if err != nil {
		var notFound *native.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, GetAssetResponse{Success: false, Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, GetAssetResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, GetAssetResponse{Success: true, Asset: asset})
}

// registerErrorStatus 将登记错误映射为HTTP状态码
func registerErrorStatus(err error) int {
	var invalidAddress *native.InvalidAddressError
	var assetExists *native.AssetExistsError
	var limitExceeded *cycles.LimitExceededError

	switch {
	case errors.As(err, &invalidAddress):
		return http.StatusBadRequest
	case errors.As(err, &assetExists):
		return http.StatusConflict
	case errors.As(err, &limitExceeded):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
