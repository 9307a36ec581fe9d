// Package bareme holds the age-indexed and score-indexed reference tables of
// the Dintilhac calculator and the bracket lookup they share.
package bareme

import (
	"fmt"
	"sort"

	"github.com/lexcalc/dintilhac/internal/domain"
)

// Bracket is one row of an age-indexed table: Value applies from Threshold
// (inclusive) up to the next row's threshold.
type Bracket[T any] struct {
	Threshold int `json:"threshold"`
	Value     T   `json:"value"`
}

// BracketTable is an immutable step function keyed by ascending thresholds.
type BracketTable[T any] struct {
	brackets []Bracket[T]
}

// NewBracketTable builds a table from rows sorted by strictly increasing
// threshold. Tables are package-level constants, so a malformed table panics.
func NewBracketTable[T any](rows ...Bracket[T]) *BracketTable[T] {
	if len(rows) == 0 {
		panic("bareme: empty bracket table")
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Threshold <= rows[i-1].Threshold {
			panic(fmt.Sprintf("bareme: thresholds not strictly increasing at %d (%d after %d)",
				i, rows[i].Threshold, rows[i-1].Threshold))
		}
	}
	brackets := make([]Bracket[T], len(rows))
	copy(brackets, rows)
	return &BracketTable[T]{brackets: brackets}
}

// Lookup returns the value of the greatest threshold <= age. Ages below the
// first threshold resolve to the first row.
func (t *BracketTable[T]) Lookup(age int) T {
	// i is the first row strictly above age
	i := sort.Search(len(t.brackets), func(i int) bool {
		return t.brackets[i].Threshold > age
	})
	if i == 0 {
		return t.brackets[0].Value
	}
	return t.brackets[i-1].Value
}

// Floor returns the smallest threshold of the table.
func (t *BracketTable[T]) Floor() int {
	return t.brackets[0].Threshold
}

// Brackets returns a copy of the rows.
func (t *BracketTable[T]) Brackets() []Bracket[T] {
	out := make([]Bracket[T], len(t.brackets))
	copy(out, t.brackets)
	return out
}

// MaxScore is the highest score of the pain and aesthetic scales.
const MaxScore = 7

// RangeTable maps a severity score 1..7 to a euro range.
type RangeTable struct {
	ranges [MaxScore]domain.Range
}

// NewRangeTable builds a table from the ranges of scores 1 to 7.
func NewRangeTable(ranges [MaxScore]domain.Range) *RangeTable {
	for i, r := range ranges {
		if r.Min.GreaterThan(r.Max) {
			panic(fmt.Sprintf("bareme: range for score %d has min above max", i+1))
		}
	}
	return &RangeTable{ranges: ranges}
}

// Lookup returns the range for score. Score 0 means not evaluated and yields
// the zero range; scores outside 0..7 are reported with ok == false.
func (t *RangeTable) Lookup(score int) (r domain.Range, ok bool) {
	switch {
	case score == 0:
		return domain.Range{}, true
	case score < 0 || score > MaxScore:
		return domain.Range{}, false
	}
	return t.ranges[score-1], true
}

// ValidScore reports whether score belongs to 0..7.
func ValidScore(score int) bool {
	return score >= 0 && score <= MaxScore
}

// Ranges returns the ranges of scores 1 to 7, in order.
func (t *RangeTable) Ranges() []domain.Range {
	out := make([]domain.Range, MaxScore)
	copy(out, t.ranges[:])
	return out
}
