package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrValidation matches every input validation error through errors.Is.
var ErrValidation = errors.New("invalid calculation input")

// FieldError is implemented by validation errors that can name the offending input.
type FieldError interface {
	error
	Field() string
}

// InvalidAgeError reports a missing or non-positive age.
type InvalidAgeError struct {
	Age int
}

func (e *InvalidAgeError) Error() string {
	if e.Age == 0 {
		return "age: required"
	}
	return fmt.Sprintf("age: must be a positive integer, got %d", e.Age)
}

func (e *InvalidAgeError) Field() string        { return "age" }
func (e *InvalidAgeError) Is(target error) bool { return target == ErrValidation }

// InvalidScoreError reports a pain or aesthetic score outside 0..7.
type InvalidScoreError struct {
	Name  string
	Score int
}

func (e *InvalidScoreError) Error() string {
	return fmt.Sprintf("%s: score must be between 0 and 7, got %d", e.Name, e.Score)
}

func (e *InvalidScoreError) Field() string        { return e.Name }
func (e *InvalidScoreError) Is(target error) bool { return target == ErrValidation }

// NegativeAmountError reports a monetary, day or hour field below zero.
type NegativeAmountError struct {
	Name  string
	Value decimal.Decimal
}

func (e *NegativeAmountError) Error() string {
	return fmt.Sprintf("%s: cannot be negative, got %s", e.Name, e.Value.String())
}

func (e *NegativeAmountError) Field() string        { return e.Name }
func (e *NegativeAmountError) Is(target error) bool { return target == ErrValidation }

// InvalidRateError reports a percentage above 100.
type InvalidRateError struct {
	Name  string
	Value decimal.Decimal
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("%s: percentage must be between 0 and 100, got %s", e.Name, e.Value.String())
}

func (e *InvalidRateError) Field() string        { return e.Name }
func (e *InvalidRateError) Is(target error) bool { return target == ErrValidation }
