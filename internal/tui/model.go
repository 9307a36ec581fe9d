// Package tui is the interactive terminal front end of the calculator.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lexcalc/dintilhac/internal/calculation"
	"github.com/lexcalc/dintilhac/internal/compare"
	"github.com/lexcalc/dintilhac/internal/config"
	"github.com/lexcalc/dintilhac/internal/domain"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	casePath string
	caseFile *domain.CaseFile // Working copy, edited from the parameters scene
	original *domain.CaseFile

	calcEngine *calculation.CalculationEngine

	result     *domain.CalculationResult
	comparison *compare.ComparisonSet

	heads          table.Model
	focusedParam   int
	modified       bool
	keys           keyMap
	err            error
	loading        bool
	loadingMessage string
}

type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	Back       key.Binding
	Results    key.Binding
	Parameters key.Binding
	Offers     key.Binding
	Tables     key.Binding
	Up         key.Binding
	Down       key.Binding
	Decrease   key.Binding
	Increase   key.Binding
	Reset      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quitter")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "aide")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "retour")),
		Results:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "évaluation")),
		Parameters: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paramètres")),
		Offers:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "offres")),
		Tables:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "barèmes")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "précédent")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "suivant")),
		Decrease:   key.NewBinding(key.WithKeys("left", "-"), key.WithHelp("←/-", "diminuer")),
		Increase:   key.NewBinding(key.WithKeys("right", "+"), key.WithHelp("→/+", "augmenter")),
		Reset:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rétablir le dossier")),
	}
}

// NewModel creates a new application model for the case file at casePath
func NewModel(casePath string, engine *calculation.CalculationEngine) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return Model{
		currentScene:   SceneResults,
		casePath:       casePath,
		calcEngine:     engine,
		heads:          newHeadsTable(),
		keys:           defaultKeyMap(),
		width:          100,
		height:         30,
		loading:        true,
		loadingMessage: "Chargement du dossier…",
	}
}

// Init loads the case file
func (m Model) Init() tea.Cmd {
	return loadCaseCmd(m.casePath)
}

func loadCaseCmd(path string) tea.Cmd {
	return func() tea.Msg {
		cf, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return CaseLoadedMsg{Case: cf}
	}
}

// calculateCmd evaluates a snapshot of cf, and compares its offers when it
// has any.
func calculateCmd(engine *calculation.CalculationEngine, cf domain.CaseFile) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		result, err := engine.ComputeContext(ctx, cf.CalculationInput)
		if err != nil {
			return CalculationCompleteMsg{Err: err}
		}

		var cs *compare.ComparisonSet
		if cf.Offer != nil || len(cf.Offers) > 0 {
			cs, err = compare.NewCompareEngine(engine).Compare(ctx, &cf)
			if err != nil {
				return CalculationCompleteMsg{Err: err}
			}
		}
		return CalculationCompleteMsg{Result: result, Comparison: cs}
	}
}

func cloneCase(cf *domain.CaseFile) *domain.CaseFile {
	c := *cf
	if cf.Offer != nil {
		offer := *cf.Offer
		c.Offer = &offer
	}
	return &c
}
