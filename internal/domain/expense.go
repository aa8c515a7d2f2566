package domain

// Split type tags. Any other value is rejected at expense creation.
const (
	SplitTypeEqual      = "equal"
	SplitTypePercentage = "percentage"
)

// Expense Model
type Expense struct {
	ID          uint    `gorm:"primaryKey" json:"id"`                           // Primary key
	GroupID     uint    `gorm:"index;not null" json:"group_id"`                 // Foreign key to Group
	Description string  `json:"description"`                                    // Human-readable description
	Amount      float64 `gorm:"not null" json:"amount"`                         // Positive expense amount
	PaidBy      uint    `gorm:"not null" json:"paid_by"`                        // User who paid (need not be a member)
	SplitType   string  `gorm:"not null" json:"split_type"`                     // equal or percentage
	Splits      []Split `gorm:"constraint:OnDelete:CASCADE;" json:"splits"`     // Owned splits, cascade lifetime
	CreatedAt   int64   `gorm:"autoCreateTime:milli" json:"created_at"`         // Timestamp of creation in milliseconds
}
