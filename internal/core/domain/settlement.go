package domain

// Fee percent bounds enforced on every settlement configuration change.
const (
	FeePercentMin = 0
	FeePercentMax = 10
)

// ValidFeePercent reports whether pct is inside the allowed fee band.
func ValidFeePercent(pct int) bool {
	return pct >= FeePercentMin && pct <= FeePercentMax
}

// SplitProceeds computes the treasury fee and seller net for a settlement.
// fee = floor(amount * feePercent / 100), net = amount - fee, so
// fee + net == amount exactly, no value created or destroyed. Every
// money-moving path (direct buy and auction settlement) must route through
// this function so fee computation cannot drift between them.
func SplitProceeds(amount int64, feePercent int) (fee int64, net int64) {
	fee = amount * int64(feePercent) / 100
	return fee, amount - fee
}
