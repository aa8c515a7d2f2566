package domain

// Split Model
//
// One user's owed-amount obligation within one expense. The payer's own
// row, when present, always carries AmountOwed == 0. Percentage holds the
// caller-supplied percentage for percentage-type expenses and is null
// otherwise; it keeps the input value even when the payer override zeroes
// the owed amount.
type Split struct {
	ID         uint     `gorm:"primaryKey" json:"id"`             // Primary key
	ExpenseID  uint     `gorm:"index;not null" json:"expense_id"` // Foreign key to Expense
	UserID     uint     `gorm:"not null" json:"user_id"`          // The obligor
	Percentage *float64 `json:"percentage"`                       // Input percentage, nil for equal splits
	AmountOwed float64  `gorm:"not null" json:"amount_owed"`      // Non-negative owed amount
}
