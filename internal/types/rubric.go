// Package types provides type definitions for structured data used throughout the paper-grader system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Criterion is a single named, weighted entry in a grading rubric.
type Criterion struct {
	Name        string  `json:"criterion" validate:"required"`
	MaxScore    float64 `json:"max_score" validate:"gt=0"`
	Description string  `json:"description"`
}

// Rubric is an ordered list of grading criteria. Order is significant:
// the evaluation breakdown and the rendered report follow rubric order.
type Rubric struct {
	Criteria []Criterion `json:"criteria" validate:"min=1,dive"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the rubric invariants: at least one criterion, every
// criterion named, every max score positive.
func (r *Rubric) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid rubric: %w", err)
	}
	return nil
}

// MaxPossibleScore returns the sum of max scores over all criteria.
func (r *Rubric) MaxPossibleScore() float64 {
	var total float64
	for _, c := range r.Criteria {
		total += c.MaxScore
	}
	return total
}

// Criterion returns the criterion with the given name, or nil if the
// rubric has no such criterion.
func (r *Rubric) Criterion(name string) *Criterion {
	for i := range r.Criteria {
		if r.Criteria[i].Name == name {
			return &r.Criteria[i]
		}
	}
	return nil
}
