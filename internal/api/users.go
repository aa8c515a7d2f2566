package api

import (
	"net/http"                 // HTTP status codes
	"splitpal/internal/domain" // Importing domain models
	"strconv"                  // String conversion

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// ListUsersHandler returns all users
func ListUsersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		users := make([]domain.User, 0) // Slice to hold users
		// Fetch every user
		if err := db.Find(&users).Error; err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users}) // Return the user list
	}
}

// GetUserHandler returns a single user by id
func GetUserHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseIDParam(c, "user_id") // Parse path parameter
		if !ok {
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, userID).Error; err != nil {
			// Missing user maps to 404
			respondError(c, &domain.NotFoundError{Resource: "user", ID: userID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user}) // Return the user
	}
}

// parseIDParam parses a numeric path parameter, answering 400 on garbage
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)                     // Raw path value
	id, err := strconv.ParseUint(raw, 10, 32) // Must be a positive integer
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
