package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// getProfile returns the authenticated user's profile, including the daily
// goals stored at signup. Goals are not recalculated here.
// GET /api/me.
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.GetInt("user_id")

	u, err := h.store.UserByID(c, userID)
	if errors.Is(err, errUserNotFound) {
		apiError(c, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		log.Printf("[getProfile] lookup failed for user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to fetch profile")
		return
	}

	c.JSON(http.StatusOK, u)
}
