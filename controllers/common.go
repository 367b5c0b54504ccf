package controllers

import "github.com/gin-gonic/gin"

// currentUserID reads the account id placed in the context by the auth
// middleware. Handles both uint and float64 in case the claim came straight
// from a decoded JWT payload.
func currentUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	switch v := raw.(type) {
	case uint:
		return v, true
	case float64:
		return uint(v), true
	default:
		return 0, false
	}
}
