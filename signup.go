package main

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"lg/nutrition-api/goals"
)

// signupBcryptCost trades a little hashing strength for signup latency;
// anything between 8 and 12 is reasonable.
const signupBcryptCost = 8

// signUp creates an account with initial daily nutrition goals and returns
// its access token.
// POST /api/signup (public — no auth required).
func (h *Handler) signUp(c *gin.Context) {
	var body signUpRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		recordSignup(signupInvalid)
		if issues, ok := validationIssues(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"errors": issues})
			return
		}
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// The datetime tag already checked the format; this can't fail in practice.
	birthDate, err := time.Parse("2006-01-02", body.BirthDate)
	if err != nil {
		recordSignup(signupInvalid)
		apiError(c, http.StatusBadRequest, "invalid birthDate, expected YYYY-MM-DD")
		return
	}
	now := h.clock()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !birthDate.Before(today) {
		recordSignup(signupInvalid)
		apiError(c, http.StatusBadRequest, "birthDate must be in the past")
		return
	}

	email := strings.ToLower(strings.TrimSpace(body.Account.Email))

	exists, err := h.store.EmailExists(c, email)
	if err != nil {
		log.Printf("[signUp] email lookup failed: %v", err)
		recordSignup(signupError)
		apiError(c, http.StatusInternalServerError, "failed to create account")
		return
	}
	if exists {
		recordSignup(signupConflict)
		apiError(c, http.StatusConflict, "This email is already in use.")
		return
	}

	// Binding tags restrict these to known values, so the casts are safe.
	profile := goals.Input{
		Goal:          goals.Goal(body.Goal),
		Gender:        goals.Gender(body.Gender),
		BirthDate:     birthDate,
		HeightCM:      body.Height,
		WeightKG:      body.Weight,
		ActivityLevel: body.ActivityLevel,
	}
	targets := goals.ComputeAt(profile, now)

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Account.Password), signupBcryptCost)
	if err != nil {
		log.Printf("[signUp] bcrypt failed: %v", err)
		recordSignup(signupError)
		apiError(c, http.StatusInternalServerError, "failed to create account")
		return
	}

	token := uuid.New().String()
	userID, err := h.store.CreateUser(c, newUser{
		Name:         strings.TrimSpace(body.Account.Name),
		Email:        email,
		PasswordHash: string(hash),
		AuthToken:    token,
		Profile:      profile,
		Goals:        targets,
	})
	if errors.Is(err, errEmailTaken) {
		// Lost the race against a concurrent signup with the same email.
		recordSignup(signupConflict)
		apiError(c, http.StatusConflict, "This email is already in use.")
		return
	}
	if err != nil {
		log.Printf("[signUp] insert failed: %v", err)
		recordSignup(signupError)
		apiError(c, http.StatusInternalServerError, "failed to create account")
		return
	}

	recordSignup(signupCreated)
	observeTargetCalories(targets.Calories)
	log.Printf("[signUp] created user %d (goal=%s, calories=%d)", userID, profile.Goal, targets.Calories)

	c.JSON(http.StatusCreated, gin.H{"accessToken": token})
}
