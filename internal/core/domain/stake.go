package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rarity tiers accepted by the vault.
const (
	RarityTierMin = 1
	RarityTierMax = 3
)

// SecondsPerDay is the divisor of the yield accrual projection.
const SecondsPerDay = 86400

// StakeRecord marks one card staked by one account. Absence of a record
// means "not staked" (the stored zero timestamp of the original design).
type StakeRecord struct {
	AccountID  uuid.UUID `json:"account_id"`
	CardID     int64     `json:"card_id"`
	RarityTier int       `json:"rarity_tier"`
	StakedAt   time.Time `json:"staked_at"`
}

// LockElapsed reports whether the stake may be withdrawn at the given time.
func (s *StakeRecord) LockElapsed(now time.Time, lockPeriod time.Duration) bool {
	return !now.Before(s.StakedAt.Add(lockPeriod))
}

// ValidRarityTier reports whether tier is one of the accepted tiers.
func ValidRarityTier(tier int) bool {
	return tier >= RarityTierMin && tier <= RarityTierMax
}

// AccruedYield projects the withdrawal payout for a stake of the given
// duration against the account's pooled yield balance: a linear day-rate
// scaling of the whole balance, clamped so the remaining balance can never
// go negative.
func AccruedYield(balance int64, stakedFor time.Duration) int64 {
	if balance <= 0 {
		return 0
	}
	seconds := int64(stakedFor / time.Second)
	if seconds <= 0 {
		return 0
	}
	earned := balance * seconds / SecondsPerDay
	if earned > balance {
		return balance
	}
	return earned
}
