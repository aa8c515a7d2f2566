// Package balance folds persisted expense splits into pairwise debt
// relationships and per-user totals. All functions are pure reads over an
// expense slice; entity existence checks belong to the caller.
//
// Debt accumulation is one-directional: if A owes B through one expense and
// B owes A through another, both relationships are reported as-is. The two
// directions are never offset against each other.
package balance

import (
	"math"
	"sort"

	"splitpal/internal/domain"
)

// Pair is the composite accumulator key: who owes whom.
type Pair struct {
	Debtor   uint
	Creditor uint
}

// Entry is one pairwise debt relationship, amount always > 0.
type Entry struct {
	FromUser uint    `json:"from_user"`
	ToUser   uint    `json:"to_user"`
	Amount   float64 `json:"amount"`
}

// UserTotal aggregates one user's debtor-side and creditor-side amounts
// across every relationship they appear in.
type UserTotal struct {
	UserID    uint    `json:"user_id"`
	TotalOwed float64 `json:"total_owed"`
	TotalDue  float64 `json:"total_due"`
}

// OwedEntry is a debt where the queried user is the debtor.
type OwedEntry struct {
	ToUser uint    `json:"to_user"`
	Amount float64 `json:"amount"`
}

// DueEntry is a debt where the queried user is the creditor.
type DueEntry struct {
	FromUser uint    `json:"from_user"`
	Amount   float64 `json:"amount"`
}

// UserBalance is the single-user query shape: both sides of the same
// global accumulator, filtered to one user.
type UserBalance struct {
	UserID uint        `json:"user_id"`
	Owed   []OwedEntry `json:"owed"`
	Due    []DueEntry  `json:"due"`
}

// Net accumulates raw pairwise debts over the given expenses. For each
// split whose obligor is not the expense payer, the owed amount is added to
// the (obligor, payer) bucket. Non-positive buckets are possible here and
// are filtered by the emitting functions.
func Net(expenses []domain.Expense) map[Pair]float64 {
	acc := make(map[Pair]float64)
	for _, expense := range expenses {
		for _, s := range expense.Splits {
			if s.UserID != expense.PaidBy {
				acc[Pair{Debtor: s.UserID, Creditor: expense.PaidBy}] += s.AmountOwed
			}
		}
	}
	return acc
}

// GroupBalances emits every positive pairwise debt in the expense set,
// rounded to 2 decimals, sorted by debtor then creditor for a stable
// response. Never nil: a group with no debts yields an empty list.
func GroupBalances(expenses []domain.Expense) []Entry {
	acc := Net(expenses)

	entries := make([]Entry, 0, len(acc))
	for pair, amount := range acc {
		if amount > 0 {
			entries = append(entries, Entry{
				FromUser: pair.Debtor,
				ToUser:   pair.Creditor,
				Amount:   round2(amount),
			})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].FromUser != entries[j].FromUser {
			return entries[i].FromUser < entries[j].FromUser
		}
		return entries[i].ToUser < entries[j].ToUser
	})
	return entries
}

// AllUserTotals sums each user's debtor-side and creditor-side amounts
// across all positive relationships. Users with no expense activity are
// omitted, not zero-filled. Totals accumulate the raw amounts and are
// rounded once at the end.
func AllUserTotals(expenses []domain.Expense) []UserTotal {
	acc := Net(expenses)

	totals := make(map[uint]*UserTotal)
	ensure := func(userID uint) *UserTotal {
		t, ok := totals[userID]
		if !ok {
			t = &UserTotal{UserID: userID}
			totals[userID] = t
		}
		return t
	}
	for pair, amount := range acc {
		if amount > 0 {
			ensure(pair.Debtor).TotalOwed += amount
			ensure(pair.Creditor).TotalDue += amount
		}
	}

	results := make([]UserTotal, 0, len(totals))
	for _, t := range totals {
		results = append(results, UserTotal{
			UserID:    t.UserID,
			TotalOwed: round2(t.TotalOwed),
			TotalDue:  round2(t.TotalDue),
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].UserID < results[j].UserID })
	return results
}

// ForUser filters the global accumulator down to one user: debts where they
// are the debtor land in Owed, debts where they are the creditor land in
// Due. Both lists are always non-nil.
func ForUser(expenses []domain.Expense, userID uint) UserBalance {
	acc := Net(expenses)

	owed := make([]OwedEntry, 0)
	due := make([]DueEntry, 0)
	for pair, amount := range acc {
		if amount <= 0 {
			continue
		}
		switch userID {
		case pair.Debtor:
			owed = append(owed, OwedEntry{ToUser: pair.Creditor, Amount: round2(amount)})
		case pair.Creditor:
			due = append(due, DueEntry{FromUser: pair.Debtor, Amount: round2(amount)})
		}
	}
	sort.Slice(owed, func(i, j int) bool { return owed[i].ToUser < owed[j].ToUser })
	sort.Slice(due, func(i, j int) bool { return due[i].FromUser < due[j].FromUser })

	return UserBalance{UserID: userID, Owed: owed, Due: due}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
