// Package school implements the classroom toys: the pass/fail grader and
// the school-bus record keeper.
package school
