package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a principal known to the exchange. Token balances live in the
// external ledger; card ownership lives in the external card registry. The
// exchange stores only identity and credentials.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
