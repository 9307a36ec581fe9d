package tui

import (
	"github.com/lexcalc/dintilhac/internal/compare"
	"github.com/lexcalc/dintilhac/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneResults Scene = iota
	SceneParameters
	SceneOffers
	SceneTables
	SceneHelp
)

func (s Scene) String() string {
	switch s {
	case SceneResults:
		return "Évaluation"
	case SceneParameters:
		return "Paramètres"
	case SceneOffers:
		return "Offres"
	case SceneTables:
		return "Barèmes"
	case SceneHelp:
		return "Aide"
	default:
		return "?"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// CaseLoadedMsg signals the case file has been loaded
type CaseLoadedMsg struct {
	Case *domain.CaseFile
}

// CalculationCompleteMsg carries a fresh evaluation of the current input.
// Comparison is nil when the case has no offer.
type CalculationCompleteMsg struct {
	Result     *domain.CalculationResult
	Comparison *compare.ComparisonSet
	Err        error
}
