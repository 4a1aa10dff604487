package v1

import (
	"github.com/finance-tracker/backend/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID returns the ID of the authenticated user. The
// authentication middleware guarantees that it is set on all routes
// using this helper.
func currentUserID(c *gin.Context) uuid.UUID {
	return c.MustGet(auth.ContextUser).(uuid.UUID)
}
