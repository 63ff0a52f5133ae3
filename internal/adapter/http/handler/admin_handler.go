package handler

import (
	"card-exchange/internal/adapter/http/dto"
	"card-exchange/internal/core/ports"
	"card-exchange/pkg/apperror"
	"card-exchange/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles the privileged administrative endpoints.
type AdminHandler struct {
	adminSvc ports.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminSvc ports.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// Pause handles POST /api/v1/admin/pause.
func (h *AdminHandler) Pause(c *gin.Context) {
	callerID, ok := currentAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	if err := h.adminSvc.Pause(c.Request.Context(), callerID); err != nil {
		response.Error(c, err)
		return
	}

	h.state(c)
}

// Unpause handles POST /api/v1/admin/unpause.
func (h *AdminHandler) Unpause(c *gin.Context) {
	callerID, ok := currentAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	if err := h.adminSvc.Unpause(c.Request.Context(), callerID); err != nil {
		response.Error(c, err)
		return
	}

	h.state(c)
}

// SetFee handles PUT /api/v1/admin/fee.
func (h *AdminHandler) SetFee(c *gin.Context) {
	callerID, ok := currentAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.FeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.adminSvc.SetFeePercent(c.Request.Context(), callerID, *req.FeePercent); err != nil {
		response.Error(c, err)
		return
	}

	h.state(c)
}

// GetState handles GET /api/v1/admin/state.
func (h *AdminHandler) GetState(c *gin.Context) {
	h.state(c)
}

func (h *AdminHandler) state(c *gin.Context) {
	state, err := h.adminSvc.GetState(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StateResponse{
		Paused:      state.Paused,
		FeePercent:  state.FeePercent,
		TotalStaked: state.TotalStaked,
	})
}
