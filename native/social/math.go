package social

import "math/big"

const (
	basisPointDenominator = 10_000
	reputationUnit        = 1_000
)

// splitTipAmount divides a tip between the author and the protocol fee
// recipient using integer basis points. authorShare + fee == amount holds
// for every input, which keeps replay deterministic across nodes.
func splitTipAmount(amount *big.Int, feeBps uint32) (authorShare, fee *big.Int) {
	fee = new(big.Int).Mul(amount, big.NewInt(int64(feeBps)))
	fee = fee.Div(fee, big.NewInt(basisPointDenominator))
	authorShare = new(big.Int).Sub(amount, fee)
	return authorShare, fee
}

// reputationCredit converts a tip amount into reputation points: one point
// per 1000 minor units, truncating.
func reputationCredit(amount *big.Int) uint64 {
	if amount == nil || amount.Sign() <= 0 {
		return 0
	}
	credit := new(big.Int).Div(amount, big.NewInt(reputationUnit))
	if !credit.IsUint64() {
		return ^uint64(0)
	}
	return credit.Uint64()
}

// periodFor buckets a height into its engagement window.
func periodFor(height, periodLength uint64) uint64 {
	if periodLength == 0 {
		return 0
	}
	return height / periodLength
}
