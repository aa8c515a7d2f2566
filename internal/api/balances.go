package api

import (
	"net/http"                  // HTTP status codes
	"splitpal/internal/balance" // Balance engine
	"splitpal/internal/domain"  // Importing domain models
	"splitpal/internal/ledger"  // Expense ledger

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// Balance responses are always recomputed from the persisted splits and
// are never cached or stored.

// GroupBalancesHandler returns the net pairwise debts within one group
func GroupBalancesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID, ok := parseIDParam(c, "group_id") // Parse path parameter
		if !ok {
			return
		}
		// ListExpenses resolves the group and answers NotFound if absent
		expenses, err := ledger.ListExpenses(db, groupID)
		if err != nil {
			respondError(c, err)
			return
		}
		// Fold the group's splits into pairwise debts
		c.JSON(http.StatusOK, gin.H{"balances": balance.GroupBalances(expenses)})
	}
}

// UserBalancesHandler returns one user's debts and credits across all groups
func UserBalancesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseIDParam(c, "user_id") // Parse path parameter
		if !ok {
			return
		}
		var user domain.User // The queried user must exist
		if err := db.First(&user, userID).Error; err != nil {
			respondError(c, &domain.NotFoundError{Resource: "user", ID: userID})
			return
		}
		// The single-user shape filters the global accumulator, so the
		// fold runs over every expense in the system
		expenses, err := ledger.ListAllExpenses(db)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, balance.ForUser(expenses, userID))
	}
}

// AllUserTotalsHandler returns every active user's total owed and due
func AllUserTotalsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		expenses, err := ledger.ListAllExpenses(db) // Global expense set
		if err != nil {
			respondError(c, err)
			return
		}
		// Users with zero activity are omitted, not zero-filled
		c.JSON(http.StatusOK, gin.H{"totals": balance.AllUserTotals(expenses)})
	}
}
