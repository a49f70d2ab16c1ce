package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errUserNotFound = errors.New("user not found")
	errEmailTaken   = errors.New("email already in use")
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// accountStore is the persistence the handlers depend on. pgStore is the real
// implementation; tests substitute an in-memory fake.
type accountStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, u newUser) (int, error)
	UserByEmail(ctx context.Context, email string) (user, error)
	UserByID(ctx context.Context, id int) (user, error)
	UserIDByToken(ctx context.Context, token string) (int, error)
}

// pgStore implements accountStore on a pgx connection pool.
type pgStore struct {
	db *pgxpool.Pool
}

func (s *pgStore) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE email = @email)",
		pgx.NamedArgs{"email": email}).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return exists, nil
}

// CreateUser inserts the user and returns its id. The UNIQUE(email) constraint
// closes the race between EmailExists and the insert; a violation is reported
// as errEmailTaken.
func (s *pgStore) CreateUser(ctx context.Context, u newUser) (int, error) {
	var id int
	err := s.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password, auth_token, goal, gender, birth_date,
		                    height, weight, activity_level, calories, carbohydrates, fats, proteins)
		 VALUES (@name, @email, @password, @authToken, @goal, @gender, @birthDate,
		         @height, @weight, @activityLevel, @calories, @carbohydrates, @fats, @proteins)
		 RETURNING id`,
		pgx.NamedArgs{
			"name":          u.Name,
			"email":         u.Email,
			"password":      u.PasswordHash,
			"authToken":     u.AuthToken,
			"goal":          string(u.Profile.Goal),
			"gender":        string(u.Profile.Gender),
			"birthDate":     u.Profile.BirthDate.Format("2006-01-02"),
			"height":        u.Profile.HeightCM,
			"weight":        u.Profile.WeightKG,
			"activityLevel": u.Profile.ActivityLevel,
			"calories":      u.Goals.Calories,
			"carbohydrates": u.Goals.Carbohydrates,
			"fats":          u.Goals.Fats,
			"proteins":      u.Goals.Proteins,
		}).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, errEmailTaken
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (s *pgStore) UserByEmail(ctx context.Context, email string) (user, error) {
	return s.userWhere(ctx, "email = @email", pgx.NamedArgs{"email": email})
}

func (s *pgStore) UserByID(ctx context.Context, id int) (user, error) {
	return s.userWhere(ctx, "id = @id", pgx.NamedArgs{"id": id})
}

func (s *pgStore) UserIDByToken(ctx context.Context, token string) (int, error) {
	var id int
	err := s.db.QueryRow(ctx, "SELECT id FROM users WHERE auth_token = $1", token).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, errUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("lookup token: %w", err)
	}
	return id, nil
}

// userWhere loads a single user row matching cond.
func (s *pgStore) userWhere(ctx context.Context, cond string, args pgx.NamedArgs) (user, error) {
	u, err := queryOne[user](ctx, s.db, "SELECT * FROM users WHERE "+cond, args)
	if errors.Is(err, pgx.ErrNoRows) {
		return user{}, errUserNotFound
	}
	if err != nil {
		return user{}, fmt.Errorf("load user: %w", err)
	}
	return u, nil
}
