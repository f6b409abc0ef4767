// Package health implements the BMI/BMR calculator.
package health
