// Package goals derives a user's initial daily nutrition targets (calories and
// macronutrient grams) from biometric inputs. It is pure arithmetic: no I/O,
// no shared mutable state, safe to call from any number of goroutines.
package goals

import (
	"math"
	"time"
)

// Goal is the user's weight objective.
type Goal string

const (
	Lose     Goal = "lose"
	Maintain Goal = "maintain"
	Gain     Goal = "gain"
)

// Gender selects the Mifflin-St Jeor constant.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Input holds the already-validated signup fields the engine needs.
// Height is centimeters, weight is kilograms, ActivityLevel is 1-5.
type Input struct {
	Goal          Goal
	Gender        Gender
	BirthDate     time.Time
	HeightCM      float64
	WeightKG      float64
	ActivityLevel int
}

// Output is the daily target: kcal and grams per macronutrient.
type Output struct {
	Calories      int `json:"calories"`
	Carbohydrates int `json:"carbohydrates"`
	Fats          int `json:"fats"`
	Proteins      int `json:"proteins"`
}

/* ─── Policy tables ──────────────────────────────────────────────────── */

// activityMultipliers maps activity level (1 = sedentary .. 5 = extremely
// active) to its TDEE multiplier.
var activityMultipliers = map[int]float64{
	1: 1.2,
	2: 1.375,
	3: 1.55,
	4: 1.725,
	5: 1.9,
}

// goalAdjustments is the kcal delta applied to TDEE per goal.
var goalAdjustments = map[Goal]float64{
	Lose:     -500,
	Maintain: 0,
	Gain:     500,
}

// macroSplit is the percentage of calories assigned to each macronutrient.
// Each row sums to 100.
type macroSplit struct {
	CarbsPct   float64
	ProteinPct float64
	FatPct     float64
}

var macroSplits = map[Goal]macroSplit{
	Lose:     {CarbsPct: 40, ProteinPct: 40, FatPct: 20},
	Maintain: {CarbsPct: 50, ProteinPct: 25, FatPct: 25},
	Gain:     {CarbsPct: 45, ProteinPct: 30, FatPct: 25},
}

// Energy density in kcal per gram.
const (
	carbsKcalPerGram   = 4
	proteinKcalPerGram = 4
	fatKcalPerGram     = 9
)

/* ─── Validation helpers (used by callers, never by the engine) ──────── */

// ParseGoal reports whether s names a known goal.
func ParseGoal(s string) (Goal, bool) {
	g := Goal(s)
	_, ok := goalAdjustments[g]
	return g, ok
}

// ParseGender reports whether s names a known gender.
func ParseGender(s string) (Gender, bool) {
	switch g := Gender(s); g {
	case Male, Female:
		return g, true
	}
	return "", false
}

// ValidActivityLevel reports whether level is within 1-5.
func ValidActivityLevel(level int) bool {
	_, ok := activityMultipliers[level]
	return ok
}

/* ─── Stages ─────────────────────────────────────────────────────────── */

// AgeAt returns the number of complete years between birthDate and now.
// Only the calendar month/day is compared; time of day and zone are ignored.
func AgeAt(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// BMR computes basal metabolic rate via Mifflin-St Jeor. Any gender other
// than Male gets the female constant.
func BMR(gender Gender, weightKG, heightCM float64, age int) float64 {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if gender == Male {
		return bmr + 5
	}
	return bmr - 161
}

// TDEE scales bmr by the activity multiplier. Unknown levels yield 0.
func TDEE(bmr float64, activityLevel int) float64 {
	return bmr * activityMultipliers[activityLevel]
}

// TargetCalories applies the goal adjustment to tdee and rounds to the
// nearest kcal. The result is never negative; no other floor is applied.
func TargetCalories(tdee float64, goal Goal) int {
	kcal := int(math.Round(tdee + goalAdjustments[goal]))
	if kcal < 0 {
		return 0
	}
	return kcal
}

// SplitMacros distributes calories across carbohydrate, fat and protein grams
// using the goal's split. Each macro is rounded on its own, so the energy
// total can drift from calories by a few kcal.
func SplitMacros(calories int, goal Goal) (carbs, fats, proteins int) {
	split := macroSplits[goal]
	grams := func(pct, density float64) int {
		g := int(math.Round(float64(calories) * pct / 100 / density))
		if g < 0 {
			return 0
		}
		return g
	}
	carbs = grams(split.CarbsPct, carbsKcalPerGram)
	fats = grams(split.FatPct, fatKcalPerGram)
	proteins = grams(split.ProteinPct, proteinKcalPerGram)
	return carbs, fats, proteins
}

/* ─── Entry points ───────────────────────────────────────────────────── */

// Compute derives daily targets for in, resolving age against the current date.
func Compute(in Input) Output {
	return ComputeAt(in, time.Now())
}

// ComputeAt derives daily targets for in with age resolved against now.
// It is defined for in-range inputs only; out-of-range values produce
// arithmetic results without failing.
func ComputeAt(in Input, now time.Time) Output {
	age := AgeAt(in.BirthDate, now)
	bmr := BMR(in.Gender, in.WeightKG, in.HeightCM, age)
	calories := TargetCalories(TDEE(bmr, in.ActivityLevel), in.Goal)
	carbs, fats, proteins := SplitMacros(calories, in.Goal)
	return Output{
		Calories:      calories,
		Carbohydrates: carbs,
		Fats:          fats,
		Proteins:      proteins,
	}
}
