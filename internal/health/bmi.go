package health

import "errors"

// ErrBadMeasurement indicates non-positive height or weight.
var ErrBadMeasurement = errors.New("height and weight must be positive")

// ErrBadAge indicates an age outside (0, 130).
var ErrBadAge = errors.New("age must be between 1 and 130")

// Sex for the BMR formula.
type Sex int

const (
	Male Sex = iota
	Female
)

// Report is the calculator's output for one person.
type Report struct {
	BMI      float64
	Category string  // WHO band
	BMR      float64 // kcal/day, Mifflin-St Jeor
}

// Assess computes BMI (kg/m²) with its WHO band and the Mifflin-St Jeor
// basal metabolic rate. Height is in centimetres, weight in kilograms.
func Assess(heightCm, weightKg float64, age int, sex Sex) (Report, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return Report{}, ErrBadMeasurement
	}
	if age <= 0 || age >= 130 {
		return Report{}, ErrBadAge
	}

	m := heightCm / 100
	bmi := weightKg / (m * m)

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age) + 5
	if sex == Female {
		bmr = 10*weightKg + 6.25*heightCm - 5*float64(age) - 161
	}

	return Report{BMI: bmi, Category: category(bmi), BMR: bmr}, nil
}

func category(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}
