package domain

import "time"

// ExchangeState is the single-row global state shared by every component:
// the pause flag, the current settlement fee and the staked-card counter.
// Mutating operations read it inside their own transaction so a committed
// pause is never observed stale.
type ExchangeState struct {
	Paused      bool      `json:"paused"`
	FeePercent  int       `json:"fee_percent"`
	TotalStaked int64     `json:"total_staked"`
	UpdatedAt   time.Time `json:"updated_at"`
}
