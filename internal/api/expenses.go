package api

import (
	"context"                  // Context for Redis operations
	"net/http"                 // HTTP status codes
	"splitpal/internal/domain" // Importing domain models
	"splitpal/internal/ledger" // Expense ledger
	"splitpal/internal/split"  // Split allocator input shape
	"splitpal/internal/utils"  // Utility functions
	"strconv"                  // String conversion
	"time"                     // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// CreateExpenseRequest carries the fields needed to create an expense
type CreateExpenseRequest struct {
	Description string        `json:"description"`                    // Human-readable description
	Amount      float64       `json:"amount" binding:"required,gt=0"` // Positive expense amount
	PaidBy      uint          `json:"paid_by" binding:"required"`     // Paying user id
	SplitType   string        `json:"split_type" binding:"required"`  // equal or percentage
	Splits      []split.Input `json:"splits"`                         // Percentage inputs, unused for equal
}

// CreateExpenseHandler creates an expense and its splits in one atomic unit
func CreateExpenseHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID, ok := parseIDParam(c, "group_id") // Parse path parameter
		if !ok {
			return
		}
		var req CreateExpenseRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Resolve entities, allocate splits, persist atomically
		expense, err := ledger.CreateExpense(db, groupID, req.Description, req.Amount, req.PaidBy, req.SplitType, req.Splits)
		if err != nil {
			// Log the failure with context
			logrus.WithFields(logrus.Fields{
				"group_id":   groupID,       // Target group
				"paid_by":    req.PaidBy,    // Paying user
				"amount":     req.Amount,    // Expense amount
				"split_type": req.SplitType, // Split policy
				"error":      err.Error(),   // Error message
			}).Warn("Expense creation failed")
			respondError(c, err)
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"expense_id": expense.ID,         // New expense ID
			"group_id":   groupID,            // Target group
			"paid_by":    expense.PaidBy,     // Paying user
			"amount":     expense.Amount,     // Expense amount
			"split_type": expense.SplitType,  // Split policy
			"splits":     len(expense.Splits), // Split count
		}).Info("Expense created")
		// Invalidate cached group detail and expense listing
		if rdb, ok := c.MustGet("redisClient").(*redis.Client); ok {
			ctx := context.Background()                                       // Context for Redis operations
			_ = utils.DeleteCache(ctx, rdb, "group:"+strconv.Itoa(int(groupID)))          // Group detail (total changed)
			_ = utils.DeleteCache(ctx, rdb, "expenses:group:"+strconv.Itoa(int(groupID))) // Expense listing
		}
		// Return the fully populated expense including its splits
		c.JSON(http.StatusCreated, gin.H{"expense": expense})
	}
}

// ListGroupExpensesHandler returns all expenses of a group with splits
func ListGroupExpensesHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID, ok := parseIDParam(c, "group_id") // Parse path parameter
		if !ok {
			return
		}
		ctx := context.Background()                                  // Context for Redis operations
		cacheKey := "expenses:group:" + strconv.Itoa(int(groupID))   // Cache key for the listing
		expenses := make([]domain.Expense, 0)                        // Response shape
		found, err := utils.GetCache(ctx, rdb, cacheKey, &expenses)  // Try to get from cache
		if err == nil && found {
			// Return cached listing
			c.JSON(http.StatusOK, gin.H{"expenses": expenses, "cached": true})
			return
		}
		expenses, err = ledger.ListExpenses(db, groupID) // Fetch from DB on cache miss
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, expenses, 60*time.Second)   // Cache the listing for 60 seconds
		c.JSON(http.StatusOK, gin.H{"expenses": expenses, "cached": false}) // Return the listing
	}
}
