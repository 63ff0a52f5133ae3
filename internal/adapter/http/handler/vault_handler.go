package handler

import (
	"time"

	"card-exchange/internal/adapter/http/dto"
	"card-exchange/internal/core/ports"
	"card-exchange/pkg/apperror"
	"card-exchange/pkg/response"

	"github.com/gin-gonic/gin"
)

// VaultHandler handles staking vault endpoints.
type VaultHandler struct {
	vaultSvc ports.VaultService
}

// NewVaultHandler creates a new VaultHandler.
func NewVaultHandler(vaultSvc ports.VaultService) *VaultHandler {
	return &VaultHandler{vaultSvc: vaultSvc}
}

// Stake handles POST /api/v1/vault/stake.
func (h *VaultHandler) Stake(c *gin.Context) {
	callerID, ok := currentAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.StakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.vaultSvc.Stake(c.Request.Context(), ports.StakeRequest{
		CallerID:   callerID,
		CardID:     req.CardID,
		RarityTier: req.RarityTier,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.StakeResponse{
		AccountID:  result.Record.AccountID.String(),
		CardID:     result.Record.CardID,
		RarityTier: result.Record.RarityTier,
		StakedAt:   result.Record.StakedAt.Format(time.RFC3339),
		YieldRate:  result.YieldRate,
	})
}

// Unstake handles POST /api/v1/vault/unstake.
func (h *VaultHandler) Unstake(c *gin.Context) {
	callerID, ok := currentAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.UnstakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.vaultSvc.Unstake(c.Request.Context(), callerID, req.CardID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.UnstakeResponse{
		CardID:           result.CardID,
		YieldEarned:      result.YieldEarned,
		RemainingBalance: result.RemainingBalance,
	})
}

// Claim handles POST /api/v1/vault/claim.
func (h *VaultHandler) Claim(c *gin.Context) {
	callerID, ok := currentAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	claimed, err := h.vaultSvc.Claim(c.Request.Context(), callerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ClaimResponse{Claimed: claimed})
}

// GetYield handles GET /api/v1/vault/yield.
func (h *VaultHandler) GetYield(c *gin.Context) {
	callerID, ok := currentAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	balance, err := h.vaultSvc.GetYield(c.Request.Context(), callerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.YieldResponse{Balance: balance})
}

// GetStake handles GET /api/v1/vault/stakes/:cardId.
func (h *VaultHandler) GetStake(c *gin.Context) {
	callerID, ok := currentAccount(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	cardID, ok := pathInt64(c, "cardId")
	if !ok {
		response.Error(c, apperror.Validation("invalid card id"))
		return
	}

	record, err := h.vaultSvc.GetStakedCard(c.Request.Context(), callerID, cardID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if record == nil {
		response.Error(c, apperror.ErrCardNotStaked())
		return
	}

	response.OK(c, dto.StakeResponse{
		AccountID:  record.AccountID.String(),
		CardID:     record.CardID,
		RarityTier: record.RarityTier,
		StakedAt:   record.StakedAt.Format(time.RFC3339),
	})
}
