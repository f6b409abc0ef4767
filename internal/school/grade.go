package school

import (
	"errors"
	"fmt"
)

// ErrScoreOutOfRange indicates a score outside [0, 100].
var ErrScoreOutOfRange = errors.New("score must be between 0 and 100")

// ErrNoScores indicates a batch grade with no scores.
var ErrNoScores = errors.New("at least one score is required")

// DefaultPassMark is the threshold the original grader used.
const DefaultPassMark = 50.0

// Grade is one student's result.
type Grade struct {
	Score  float64
	Letter string
	Passed bool
}

// ClassReport summarises a batch of grades.
type ClassReport struct {
	Grades  []Grade
	Average float64
	Passed  int
	Failed  int
}

// GradeScore grades one score against the pass mark.
func GradeScore(score, passMark float64) (Grade, error) {
	if score < 0 || score > 100 {
		return Grade{}, fmt.Errorf("%w: %.1f", ErrScoreOutOfRange, score)
	}

	return Grade{Score: score, Letter: letter(score), Passed: score >= passMark}, nil
}

// GradeClass grades every score and reports the class average.
func GradeClass(scores []float64, passMark float64) (ClassReport, error) {
	if len(scores) == 0 {
		return ClassReport{}, ErrNoScores
	}

	report := ClassReport{Grades: make([]Grade, 0, len(scores))}
	sum := 0.0
	for _, s := range scores {
		g, err := GradeScore(s, passMark)
		if err != nil {
			return ClassReport{}, err
		}
		report.Grades = append(report.Grades, g)
		sum += s
		if g.Passed {
			report.Passed++
		} else {
			report.Failed++
		}
	}
	report.Average = sum / float64(len(scores))
	return report, nil
}

func letter(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	case score >= 50:
		return "E"
	default:
		return "F"
	}
}
