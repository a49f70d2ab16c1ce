package main

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// fakeStore is an in-memory accountStore. failWith, when set, is returned
// from every method to simulate a database outage.
type fakeStore struct {
	mu       sync.Mutex
	users    []user
	failWith error

	// raceEmail makes EmailExists report false for an email that CreateUser
	// then rejects, simulating a concurrent signup.
	raceEmail string
}

func (s *fakeStore) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return false, s.failWith
	}
	if email == s.raceEmail {
		return false, nil
	}
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStore) CreateUser(_ context.Context, nu newUser) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return 0, s.failWith
	}
	if nu.Email == s.raceEmail {
		return 0, errEmailTaken
	}
	for _, u := range s.users {
		if u.Email == nu.Email {
			return 0, errEmailTaken
		}
	}
	id := len(s.users) + 1
	s.users = append(s.users, user{
		ID:            id,
		Name:          nu.Name,
		Email:         nu.Email,
		Password:      nu.PasswordHash,
		AuthToken:     nu.AuthToken,
		Goal:          string(nu.Profile.Goal),
		Gender:        string(nu.Profile.Gender),
		BirthDate:     DateOnly{nu.Profile.BirthDate},
		HeightCM:      nu.Profile.HeightCM,
		WeightKG:      nu.Profile.WeightKG,
		ActivityLevel: nu.Profile.ActivityLevel,
		Calories:      nu.Goals.Calories,
		Carbohydrates: nu.Goals.Carbohydrates,
		Fats:          nu.Goals.Fats,
		Proteins:      nu.Goals.Proteins,
	})
	return id, nil
}

func (s *fakeStore) UserByEmail(_ context.Context, email string) (user, error) {
	return s.find(func(u user) bool { return u.Email == email })
}

func (s *fakeStore) UserByID(_ context.Context, id int) (user, error) {
	return s.find(func(u user) bool { return u.ID == id })
}

func (s *fakeStore) UserIDByToken(_ context.Context, token string) (int, error) {
	u, err := s.find(func(u user) bool { return u.AuthToken == token })
	return u.ID, err
}

func (s *fakeStore) find(match func(user) bool) (user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return user{}, s.failWith
	}
	for _, u := range s.users {
		if match(u) {
			return u, nil
		}
	}
	return user{}, errUserNotFound
}

// seedUser inserts a user with the given credentials directly into the store.
func (s *fakeStore) seedUser(email, password, token string) user {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u := user{
		ID:            len(s.users) + 1,
		Name:          "Seeded",
		Email:         email,
		Password:      string(hash),
		AuthToken:     token,
		Goal:          "maintain",
		Gender:        "male",
		BirthDate:     DateOnly{time.Date(1996, 6, 15, 0, 0, 0, 0, time.UTC)},
		HeightCM:      180,
		WeightKG:      80,
		ActivityLevel: 3,
		Calories:      2759,
		Carbohydrates: 345,
		Fats:          77,
		Proteins:      172,
	}
	s.users = append(s.users, u)
	return u
}

var errDBDown = errors.New("connection refused")

// testNow is the fixed clock used by handler tests.
var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

// setupRouter returns a router with all routes registered against store.
func setupRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := Handler{store: store, now: func() time.Time { return testNow }}
	router := gin.New()
	h.registerRoutes(router)
	return router
}
