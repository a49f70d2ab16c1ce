// CLI tool to create a user with a bcrypt-hashed password and initial daily
// nutrition goals derived from the entered body profile.
// Usage: go run ./cmd/create-user (from the repo root)
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"lg/nutrition-api/goals"
)

// profile is the parsed, validated console input.
type profile struct {
	Name     string
	Email    string
	Password string
	Input    goals.Input
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	p, err := readProfile(os.Stdin, os.Stdout, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid input: %v\n", err)
		os.Exit(1)
	}
	targets := goals.Compute(p.Input)

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error hashing password: %v\n", err)
		os.Exit(1)
	}

	conn, err := pgx.Connect(context.Background(), os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	authToken := uuid.New().String()

	var userID int
	err = conn.QueryRow(context.Background(),
		`INSERT INTO users (name, email, password, auth_token, goal, gender, birth_date,
		                    height, weight, activity_level, calories, carbohydrates, fats, proteins)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`,
		p.Name, p.Email, string(hash), authToken,
		string(p.Input.Goal), string(p.Input.Gender), p.Input.BirthDate.Format("2006-01-02"),
		p.Input.HeightCM, p.Input.WeightKG, p.Input.ActivityLevel,
		targets.Calories, targets.Carbohydrates, targets.Fats, targets.Proteins,
	).Scan(&userID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nUser created successfully!\n")
	fmt.Printf("  ID:         %d\n", userID)
	fmt.Printf("  Email:      %s\n", p.Email)
	fmt.Printf("  Auth Token: %s\n", authToken)
	fmt.Printf("  Goals:      %d kcal, %dg carbs, %dg fat, %dg protein\n",
		targets.Calories, targets.Carbohydrates, targets.Fats, targets.Proteins)
}

// readProfile prompts on out and reads one answer per line from in.
// now is the reference date for rejecting future birth dates.
func readProfile(in io.Reader, out io.Writer, now time.Time) (profile, error) {
	reader := bufio.NewReader(in)
	ask := func(label string) string {
		fmt.Fprintf(out, "%s: ", label)
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}

	var p profile
	p.Name = ask("Name")
	if p.Name == "" {
		return p, fmt.Errorf("name is required")
	}
	p.Email = strings.ToLower(ask("Email"))
	if !strings.Contains(p.Email, "@") {
		return p, fmt.Errorf("email %q looks invalid", p.Email)
	}
	p.Password = ask("Password")
	if len(p.Password) < 8 {
		return p, fmt.Errorf("password must be at least 8 characters")
	}

	goal, ok := goals.ParseGoal(ask("Goal (lose/maintain/gain)"))
	if !ok {
		return p, fmt.Errorf("goal must be one of: lose, maintain, gain")
	}
	gender, ok := goals.ParseGender(ask("Gender (male/female)"))
	if !ok {
		return p, fmt.Errorf("gender must be one of: male, female")
	}
	birth, err := time.Parse("2006-01-02", ask("Birth date (YYYY-MM-DD)"))
	if err != nil {
		return p, fmt.Errorf("invalid birth date: %w", err)
	}
	if !birth.Before(now) {
		return p, fmt.Errorf("birth date must be in the past")
	}
	height, err := strconv.ParseFloat(ask("Height (cm)"), 64)
	if err != nil || height <= 0 {
		return p, fmt.Errorf("height must be a positive number of centimeters")
	}
	weight, err := strconv.ParseFloat(ask("Weight (kg)"), 64)
	if err != nil || weight <= 0 {
		return p, fmt.Errorf("weight must be a positive number of kilograms")
	}
	level, err := strconv.Atoi(ask("Activity level (1-5)"))
	if err != nil || !goals.ValidActivityLevel(level) {
		return p, fmt.Errorf("activity level must be an integer from 1 to 5")
	}

	p.Input = goals.Input{
		Goal:          goal,
		Gender:        gender,
		BirthDate:     birth,
		HeightCM:      height,
		WeightKG:      weight,
		ActivityLevel: level,
	}
	return p, nil
}
