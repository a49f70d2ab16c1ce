package main

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"lg/nutrition-api/goals"
)

// DateOnly wraps time.Time to serialize as "YYYY-MM-DD" in JSON.
type DateOnly struct{ time.Time }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ScanDate implements pgtype.DateScanner so pgx can scan PostgreSQL date
// columns (OID 1082) into DateOnly. NULL values zero the time.
func (d *DateOnly) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		d.Time = time.Time{}
		return nil
	}
	d.Time = v.Time
	return nil
}

/* ─── Domain structs ─────────────────────────────────────────────────── */

// user maps to the users table. AuthToken and Password are hidden from JSON responses.
// The four goal columns are written once at signup from goals.Compute.
type user struct {
	ID            int        `json:"id"             db:"id"`
	Name          string     `json:"name"           db:"name"`
	Email         string     `json:"email"          db:"email"`
	Password      string     `json:"-"              db:"password"`
	AuthToken     string     `json:"-"              db:"auth_token"`
	Goal          string     `json:"goal"           db:"goal"`
	Gender        string     `json:"gender"         db:"gender"`
	BirthDate     DateOnly   `json:"birth_date"     db:"birth_date"`
	HeightCM      float64    `json:"height"         db:"height"`
	WeightKG      float64    `json:"weight"         db:"weight"`
	ActivityLevel int        `json:"activity_level" db:"activity_level"`
	Calories      int        `json:"calories"       db:"calories"`
	Carbohydrates int        `json:"carbohydrates"  db:"carbohydrates"`
	Fats          int        `json:"fats"           db:"fats"`
	Proteins      int        `json:"proteins"       db:"proteins"`
	CreatedAt     *time.Time `json:"created_at"     db:"created_at"`
}

// newUser is everything needed to insert a users row. Password is already hashed.
type newUser struct {
	Name         string
	Email        string
	PasswordHash string
	AuthToken    string
	Profile      goals.Input
	Goals        goals.Output
}

/* ─── Request / Response types ───────────────────────────────────────── */

// signUpRequest is the request body for POST /api/signup. Field names follow
// the mobile client's camelCase payload.
type signUpRequest struct {
	Goal          string        `json:"goal"          binding:"required,oneof=lose maintain gain"`
	Gender        string        `json:"gender"        binding:"required,oneof=male female"`
	BirthDate     string        `json:"birthDate"     binding:"required,datetime=2006-01-02"`
	Height        float64       `json:"height"        binding:"required,gt=0,lte=300"`
	Weight        float64       `json:"weight"        binding:"required,gt=0,lte=700"`
	ActivityLevel int           `json:"activityLevel" binding:"required,min=1,max=5"`
	Account       signUpAccount `json:"account"`
}

// signUpAccount is the nested account block of signUpRequest.
type signUpAccount struct {
	Name     string `json:"name"     binding:"required,min=1"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// loginRequest is the request body for POST /api/login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// validationIssue is one entry of the {"errors": [...]} 400 response.
type validationIssue struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}
