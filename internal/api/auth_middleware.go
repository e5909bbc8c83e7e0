package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Armvda11/Epic7-sub000/internal/constants"
)

const (
	ctxUserID   = "userID"
	ctxUserName = "userName"
)

// AuthRequired rejects requests without a valid bearer session token
// and stores the authenticated user in the request context.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(constants.HeaderAuthorization)
		if !strings.HasPrefix(header, constants.BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrAuthRequired})
			return
		}
		userID, name, err := VerifySessionToken(secret, strings.TrimPrefix(header, constants.BearerPrefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{constants.JSONKeyError: constants.ErrInvalidSession})
			return
		}
		c.Set(ctxUserID, userID)
		c.Set(ctxUserName, name)
		c.Next()
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}
