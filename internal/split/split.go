// Package split allocates an expense amount across participants according
// to a split policy. It is pure: it never touches storage.
package split

import (
	"math"

	"splitpal/internal/domain"
)

// Input is one caller-supplied (user, percentage) pair for a
// percentage-type expense.
type Input struct {
	UserID     uint    `json:"user_id" binding:"required"`
	Percentage float64 `json:"percentage"`
}

// Allocate produces the split rows for one expense.
//
// For equal splits the members slice is the full group membership and each
// member owes round2(amount/n); for percentage splits the inputs must sum
// to exactly 100 (no epsilon tolerance) and each entry owes
// round2(amount*percentage/100). In both policies the payer's own row is
// forced to zero, though for percentage splits the stored percentage keeps
// the supplied value.
//
// Every owed amount is rounded to 2 decimals independently; the per-split
// sum is therefore allowed to drift from the expense amount by up to
// 0.01*(n-1).
func Allocate(amount float64, splitType string, paidBy uint, members []domain.User, inputs []Input) ([]domain.Split, error) {
	switch splitType {
	case domain.SplitTypeEqual:
		return allocateEqual(amount, paidBy, members)
	case domain.SplitTypePercentage:
		return allocatePercentage(amount, paidBy, inputs)
	default:
		return nil, &domain.ValidationError{Msg: "invalid split type"}
	}
}

func allocateEqual(amount float64, paidBy uint, members []domain.User) ([]domain.Split, error) {
	if len(members) == 0 {
		return nil, &domain.InvalidStateError{Msg: "no group members found"}
	}

	share := round2(amount / float64(len(members)))
	splits := make([]domain.Split, 0, len(members))
	for _, member := range members {
		owed := share
		if member.ID == paidBy {
			owed = 0 // a person cannot owe themselves
		}
		splits = append(splits, domain.Split{
			UserID:     member.ID,
			AmountOwed: owed,
			Percentage: nil,
		})
	}
	return splits, nil
}

func allocatePercentage(amount float64, paidBy uint, inputs []Input) ([]domain.Split, error) {
	var total float64
	for _, in := range inputs {
		total += in.Percentage
	}
	// Exact equality on purpose: 99.99 and 100.01 both fail.
	if total != 100 {
		return nil, &domain.ValidationError{Msg: "total percentage must be 100"}
	}

	splits := make([]domain.Split, 0, len(inputs))
	for _, in := range inputs {
		owed := round2(amount * in.Percentage / 100)
		if in.UserID == paidBy {
			owed = 0 // payer override; the stored percentage stays as supplied
		}
		pct := in.Percentage
		splits = append(splits, domain.Split{
			UserID:     in.UserID,
			Percentage: &pct,
			AmountOwed: owed,
		})
	}
	return splits, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
