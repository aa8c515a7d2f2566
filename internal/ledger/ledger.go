// Package ledger owns expense persistence: atomic creation of an expense
// together with its splits, and read access to a group's expenses.
package ledger

import (
	"errors"

	"gorm.io/gorm"

	"splitpal/internal/domain"
	"splitpal/internal/split"
)

// CreateExpense resolves the group (with members) and the payer, runs the
// split allocator, and persists the expense and its splits as one
// transaction. Any validation or allocation failure rolls everything back;
// either the expense and all of its splits exist afterwards, or none do.
// The returned expense carries its populated splits.
func CreateExpense(db *gorm.DB, groupID uint, description string, amount float64, paidBy uint, splitType string, inputs []split.Input) (*domain.Expense, error) {
	var group domain.Group
	// Load the group with its membership; equal splits need the member list
	if err := db.Preload("Members").First(&group, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "group", ID: groupID}
		}
		return nil, err
	}

	// The payer must exist but need not be a group member
	var payer domain.User
	if err := db.First(&payer, paidBy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "payer", ID: paidBy}
		}
		return nil, err
	}

	splits, err := split.Allocate(amount, splitType, paidBy, group.Members, inputs)
	if err != nil {
		return nil, err
	}

	expense := domain.Expense{
		GroupID:     groupID,
		Description: description,
		Amount:      amount,
		PaidBy:      paidBy,
		SplitType:   splitType,
		Splits:      splits,
	}
	// Atomic write: gorm creates the splits through the association inside
	// the same transaction as the expense row
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&expense).Error
	}); err != nil {
		return nil, err
	}
	return &expense, nil
}

// ListExpenses returns every expense of one group with splits preloaded,
// in storage order. Fails with NotFound if the group is absent; a group
// with no expenses yields an empty slice, not an error.
func ListExpenses(db *gorm.DB, groupID uint) ([]domain.Expense, error) {
	var group domain.Group
	if err := db.First(&group, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Resource: "group", ID: groupID}
		}
		return nil, err
	}

	expenses := make([]domain.Expense, 0)
	if err := db.Preload("Splits").Where("group_id = ?", groupID).Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// ListAllExpenses returns every expense in the system with splits
// preloaded. The global balance queries fold over this set.
func ListAllExpenses(db *gorm.DB) ([]domain.Expense, error) {
	expenses := make([]domain.Expense, 0)
	if err := db.Preload("Splits").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}
