package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Administration & Global State (ADM) ----

func ErrExchangePaused() *AppError {
	return New("ADM_001", "Exchange is paused", http.StatusConflict)
}

func ErrExchangeNotPaused() *AppError {
	return New("ADM_002", "Exchange is not paused", http.StatusConflict)
}

func ErrFeePercentOutOfRange() *AppError {
	return New("ADM_003", "Fee percent must be between 0 and 10", http.StatusBadRequest)
}

func ErrAdminOnly() *AppError {
	return New("ADM_004", "Caller is not the exchange administrator", http.StatusForbidden)
}

// ---- Listings & Auctions (LST) ----

func ErrListingNotFound() *AppError {
	return New("LST_001", "Listing not found", http.StatusNotFound)
}

func ErrListingClosed() *AppError {
	return New("LST_002", "Listing is no longer active", http.StatusConflict)
}

func ErrNotAnAuction() *AppError {
	return New("LST_003", "Listing is not an auction", http.StatusConflict)
}

func ErrIsAnAuction() *AppError {
	return New("LST_004", "Listing is an auction", http.StatusConflict)
}

func ErrInvalidPrice() *AppError {
	return New("LST_005", "Price must be greater than zero", http.StatusBadRequest)
}

func ErrInvalidAuctionDuration() *AppError {
	return New("LST_006", "Auction duration must be greater than zero", http.StatusBadRequest)
}

func ErrAuctionStillOpen() *AppError {
	return New("LST_007", "Auction has not ended yet", http.StatusConflict)
}

func ErrAuctionEnded() *AppError {
	return New("LST_008", "Auction has already ended", http.StatusConflict)
}

func ErrBidTooLow() *AppError {
	return New("LST_009", "Bid is below the minimum accepted amount", http.StatusUnprocessableEntity)
}

func ErrCardAlreadyListed() *AppError {
	return New("LST_010", "Card already has an active listing", http.StatusConflict)
}

func ErrNotSeller() *AppError {
	return New("LST_011", "Caller is not the seller of this listing", http.StatusForbidden)
}

func ErrBidNotFound() *AppError {
	return New("LST_012", "Bid record not found", http.StatusNotFound)
}

func ErrAuctionHasBids() *AppError {
	return New("LST_013", "Auction with escrowed bids cannot be cancelled", http.StatusConflict)
}

// ---- Yield Vault (VLT) ----

func ErrInvalidRarityTier() *AppError {
	return New("VLT_001", "Rarity tier must be 1, 2 or 3", http.StatusBadRequest)
}

func ErrCardAlreadyStaked() *AppError {
	return New("VLT_002", "Card is already staked", http.StatusConflict)
}

func ErrCardNotStaked() *AppError {
	return New("VLT_003", "Card is not staked by caller", http.StatusNotFound)
}

func ErrLockPeriodActive() *AppError {
	return New("VLT_004", "Stake lock period has not elapsed", http.StatusConflict)
}

func ErrNoYieldToClaim() *AppError {
	return New("VLT_005", "Yield balance is zero", http.StatusConflict)
}

func ErrCardListed() *AppError {
	return New("VLT_006", "Card with an active listing cannot be staked", http.StatusConflict)
}

// ---- External Ledger (LGR) ----

func ErrLedgerTransferFailed(err error) *AppError {
	return Wrap("LGR_001", "Ledger transfer failed", http.StatusBadGateway, err)
}

// ---- Authentication & Ownership (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrNotCardOwner() *AppError {
	return New("AUTH_004", "Caller does not own this card", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("SYS_002", message, http.StatusBadRequest)
}
