package ledger

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"splitpal/internal/db"
	"splitpal/internal/domain"
	"splitpal/internal/split"
)

// newTestDB opens a throwaway SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "ledger.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(gormDB))
	return gormDB
}

func seedUser(t *testing.T, gormDB *gorm.DB, name string) domain.User {
	t.Helper()
	user := domain.User{Name: name, Password: "x"}
	require.NoError(t, gormDB.Create(&user).Error)
	return user
}

func seedGroup(t *testing.T, gormDB *gorm.DB, name string, members ...domain.User) domain.Group {
	t.Helper()
	group := domain.Group{Name: name, Members: members}
	require.NoError(t, gormDB.Create(&group).Error)
	return group
}

func TestCreateExpenseEqual(t *testing.T) {
	gormDB := newTestDB(t)
	alice := seedUser(t, gormDB, "Alice")
	bob := seedUser(t, gormDB, "Bob")
	carol := seedUser(t, gormDB, "Carol")
	trip := seedGroup(t, gormDB, "Trip", alice, bob, carol)

	expense, err := CreateExpense(gormDB, trip.ID, "Hotel", 90, alice.ID, domain.SplitTypeEqual, nil)
	require.NoError(t, err)
	require.Len(t, expense.Splits, 3)
	assert.NotZero(t, expense.ID)

	owed := map[uint]float64{}
	for _, s := range expense.Splits {
		assert.Equal(t, expense.ID, s.ExpenseID)
		assert.Nil(t, s.Percentage)
		owed[s.UserID] = s.AmountOwed
	}
	assert.Equal(t, map[uint]float64{alice.ID: 0, bob.ID: 30, carol.ID: 30}, owed)

	// The expense must be readable back with its splits
	var stored domain.Expense
	require.NoError(t, gormDB.Preload("Splits").First(&stored, expense.ID).Error)
	assert.Equal(t, "Hotel", stored.Description)
	assert.Equal(t, domain.SplitTypeEqual, stored.SplitType)
	assert.Len(t, stored.Splits, 3)
}

func TestCreateExpensePercentage(t *testing.T) {
	gormDB := newTestDB(t)
	alice := seedUser(t, gormDB, "Alice")
	bob := seedUser(t, gormDB, "Bob")
	carol := seedUser(t, gormDB, "Carol")
	trip := seedGroup(t, gormDB, "Trip", alice, bob, carol)

	expense, err := CreateExpense(gormDB, trip.ID, "Dinner", 100, bob.ID, domain.SplitTypePercentage, []split.Input{
		{UserID: alice.ID, Percentage: 50},
		{UserID: bob.ID, Percentage: 30},
		{UserID: carol.ID, Percentage: 20},
	})
	require.NoError(t, err)
	require.Len(t, expense.Splits, 3)

	for _, s := range expense.Splits {
		require.NotNil(t, s.Percentage)
		switch s.UserID {
		case alice.ID:
			assert.Equal(t, 50.0, s.AmountOwed)
			assert.Equal(t, 50.0, *s.Percentage)
		case bob.ID:
			// Payer override: owed amount zeroed, input percentage kept
			assert.Equal(t, 0.0, s.AmountOwed)
			assert.Equal(t, 30.0, *s.Percentage)
		case carol.ID:
			assert.Equal(t, 20.0, s.AmountOwed)
			assert.Equal(t, 20.0, *s.Percentage)
		}
	}
}

func TestCreateExpenseValidationLeavesNothingBehind(t *testing.T) {
	gormDB := newTestDB(t)
	alice := seedUser(t, gormDB, "Alice")
	bob := seedUser(t, gormDB, "Bob")
	trip := seedGroup(t, gormDB, "Trip", alice, bob)

	// Percentages summing to 99.99 fail validation
	_, err := CreateExpense(gormDB, trip.ID, "Dinner", 100, alice.ID, domain.SplitTypePercentage, []split.Input{
		{UserID: alice.ID, Percentage: 60},
		{UserID: bob.ID, Percentage: 39.99},
	})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)

	// All or nothing: neither the expense nor any split row may exist
	var expenseCount, splitCount int64
	require.NoError(t, gormDB.Model(&domain.Expense{}).Count(&expenseCount).Error)
	require.NoError(t, gormDB.Model(&domain.Split{}).Count(&splitCount).Error)
	assert.Zero(t, expenseCount)
	assert.Zero(t, splitCount)
}

func TestCreateExpenseEmptyGroup(t *testing.T) {
	gormDB := newTestDB(t)
	alice := seedUser(t, gormDB, "Alice")
	empty := seedGroup(t, gormDB, "Empty")

	_, err := CreateExpense(gormDB, empty.ID, "Void", 10, alice.ID, domain.SplitTypeEqual, nil)
	var invalidState *domain.InvalidStateError
	require.ErrorAs(t, err, &invalidState)
}

func TestCreateExpenseMissingEntities(t *testing.T) {
	gormDB := newTestDB(t)
	alice := seedUser(t, gormDB, "Alice")
	trip := seedGroup(t, gormDB, "Trip", alice)

	var notFound *domain.NotFoundError

	_, err := CreateExpense(gormDB, 999, "x", 10, alice.ID, domain.SplitTypeEqual, nil)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "group", notFound.Resource)

	_, err = CreateExpense(gormDB, trip.ID, "x", 10, 999, domain.SplitTypeEqual, nil)
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "payer", notFound.Resource)
}

func TestCreateExpensePayerOutsideGroup(t *testing.T) {
	gormDB := newTestDB(t)
	alice := seedUser(t, gormDB, "Alice")
	bob := seedUser(t, gormDB, "Bob")
	outsider := seedUser(t, gormDB, "Zed")
	trip := seedGroup(t, gormDB, "Trip", alice, bob)

	// The payer need not be a member; only members receive splits
	expense, err := CreateExpense(gormDB, trip.ID, "Taxi", 40, outsider.ID, domain.SplitTypeEqual, nil)
	require.NoError(t, err)
	require.Len(t, expense.Splits, 2)
	for _, s := range expense.Splits {
		assert.NotEqual(t, outsider.ID, s.UserID)
		assert.Equal(t, 20.0, s.AmountOwed)
	}
}

func TestListExpenses(t *testing.T) {
	gormDB := newTestDB(t)
	alice := seedUser(t, gormDB, "Alice")
	bob := seedUser(t, gormDB, "Bob")
	trip := seedGroup(t, gormDB, "Trip", alice, bob)

	// Absent group answers NotFound
	_, err := ListExpenses(gormDB, 999)
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)

	// A group with no expenses yields an empty slice, not an error
	expenses, err := ListExpenses(gormDB, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, expenses)

	_, err = CreateExpense(gormDB, trip.ID, "Lunch", 30, alice.ID, domain.SplitTypeEqual, nil)
	require.NoError(t, err)
	_, err = CreateExpense(gormDB, trip.ID, "Coffee", 8, bob.ID, domain.SplitTypeEqual, nil)
	require.NoError(t, err)

	expenses, err = ListExpenses(gormDB, trip.ID)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	for _, e := range expenses {
		assert.Len(t, e.Splits, 2, "splits must come back preloaded")
	}
}

func TestListAllExpensesSpansGroups(t *testing.T) {
	gormDB := newTestDB(t)
	alice := seedUser(t, gormDB, "Alice")
	bob := seedUser(t, gormDB, "Bob")
	trip := seedGroup(t, gormDB, "Trip", alice, bob)
	home := seedGroup(t, gormDB, "Home", alice, bob)

	_, err := CreateExpense(gormDB, trip.ID, "Lunch", 30, alice.ID, domain.SplitTypeEqual, nil)
	require.NoError(t, err)
	_, err = CreateExpense(gormDB, home.ID, "Rent", 1200, bob.ID, domain.SplitTypeEqual, nil)
	require.NoError(t, err)

	expenses, err := ListAllExpenses(gormDB)
	require.NoError(t, err)
	assert.Len(t, expenses, 2)
}
