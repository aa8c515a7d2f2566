package api

import (
	"context"                  // Context for Redis operations
	"net/http"                 // HTTP status codes
	"splitpal/internal/domain" // Importing domain models
	"splitpal/internal/utils"  // Utility functions
	"strconv"                  // String conversion
	"time"                     // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// CreateGroupRequest carries the fields needed to create a group
type CreateGroupRequest struct {
	Name    string `json:"name" binding:"required"` // Group name must be provided
	UserIDs []uint `json:"user_ids"`                // Initial member ids, may be empty
}

// GroupResponse is the group detail shape: members plus the summed
// expense total, both computed on read
type GroupResponse struct {
	ID            uint          `json:"id"`             // Group ID
	Name          string        `json:"name"`           // Group name
	Users         []domain.User `json:"users"`          // Member list
	TotalExpenses float64       `json:"total_expenses"` // Sum of expense amounts
}

// CreateGroupHandler creates a group with its initial member list.
// Membership is fixed after creation; every listed user must exist.
func CreateGroupHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateGroupRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		group := domain.Group{Name: req.Name}
		// Atomic creation: the group row and all membership rows land
		// together, or a missing user rolls the whole thing back
		err := db.Transaction(func(tx *gorm.DB) error {
			members := make([]domain.User, 0, len(req.UserIDs))
			for _, uid := range req.UserIDs {
				var user domain.User // Each member must be an existing user
				if err := tx.First(&user, uid).Error; err != nil {
					return &domain.NotFoundError{Resource: "user", ID: uid} // Rollback on missing user
				}
				members = append(members, user)
			}
			group.Members = members
			// Creating the group writes the group_members join rows too
			return tx.Create(&group).Error
		})
		// Handle transaction result
		if err != nil {
			respondError(c, err)
			return
		}
		// Log group creation
		logrus.WithFields(logrus.Fields{
			"group_id": group.ID,         // New group ID
			"name":     group.Name,       // Group name
			"members":  len(req.UserIDs), // Member count
		}).Info("Group created")
		// Return the populated group detail
		c.JSON(http.StatusCreated, GroupResponse{
			ID:            group.ID,
			Name:          group.Name,
			Users:         group.Members,
			TotalExpenses: 0,
		})
	}
}

// GetGroupHandler returns group details with members and expense total
func GetGroupHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		groupID, ok := parseIDParam(c, "group_id") // Parse path parameter
		if !ok {
			return
		}
		ctx := context.Background()                                // Context for Redis operations
		cacheKey := "group:" + strconv.Itoa(int(groupID))          // Cache key for group detail
		var cached GroupResponse                                   // Cached response shape
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)  // Try to get from cache
		if err == nil && found {
			// Return cached group detail
			c.JSON(http.StatusOK, cached)
			return
		}
		resp, err := loadGroupResponse(db, groupID) // Fetch from DB on cache miss
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, 60*time.Second) // Cache the detail for 60 seconds
		c.JSON(http.StatusOK, resp)                                  // Return group detail
	}
}

// ListGroupsHandler returns every group with members and expense totals
func ListGroupsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		groups := make([]domain.Group, 0) // Slice to hold groups
		// Fetch every group with membership preloaded
		if err := db.Preload("Members").Find(&groups).Error; err != nil {
			respondError(c, err)
			return
		}
		resp := make([]GroupResponse, 0, len(groups))
		for _, g := range groups {
			total, err := sumGroupExpenses(db, g.ID) // Expense total per group
			if err != nil {
				respondError(c, err)
				return
			}
			resp = append(resp, GroupResponse{ID: g.ID, Name: g.Name, Users: g.Members, TotalExpenses: total})
		}
		c.JSON(http.StatusOK, gin.H{"groups": resp}) // Return the group list
	}
}

// loadGroupResponse builds the group detail shape from storage
func loadGroupResponse(db *gorm.DB, groupID uint) (*GroupResponse, error) {
	var group domain.Group
	if err := db.Preload("Members").First(&group, groupID).Error; err != nil {
		return nil, &domain.NotFoundError{Resource: "group", ID: groupID}
	}
	total, err := sumGroupExpenses(db, groupID)
	if err != nil {
		return nil, err
	}
	return &GroupResponse{ID: group.ID, Name: group.Name, Users: group.Members, TotalExpenses: total}, nil
}

// sumGroupExpenses sums the amounts of one group's expenses
func sumGroupExpenses(db *gorm.DB, groupID uint) (float64, error) {
	var total float64
	err := db.Model(&domain.Expense{}).
		Where("group_id = ?", groupID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
