package coding

import (
	"context"

	"github.com/chartsense/chartsense/internal/domain/record"
)

type SuggestionResult struct {
	EncounterID string           `json:"encounter_id"`
	Suggestions []CodeSuggestion `json:"suggestions"`
	RWImpact
}

// Service combines the suggestion catalog with the RW calculator.
// baseRate is the reimbursement amount per RW unit in THB.
type Service struct {
	table    RWTable
	baseRate float64
}

func NewService(table RWTable, baseRate float64) *Service {
	return &Service{table: table, baseRate: baseRate}
}

// SuggestForSnapshot produces code suggestions for a snapshot plus the
// aggregate RW impact if all of them were accepted.
func (s *Service) SuggestForSnapshot(_ context.Context, snap *record.Snapshot) *SuggestionResult {
	suggestions := Suggest(s.table, snap)

	currentCodes := make([]string, 0, len(snap.Diagnoses))
	for _, d := range snap.Diagnoses {
		currentCodes = append(currentCodes, d.Code)
	}
	suggestedCodes := make([]string, 0, len(suggestions))
	for _, sg := range suggestions {
		suggestedCodes = append(suggestedCodes, sg.ICDCode)
	}

	return &SuggestionResult{
		EncounterID: snap.EncounterID,
		Suggestions: suggestions,
		RWImpact:    CalculateRW(s.table, currentCodes, suggestedCodes, s.baseRate),
	}
}

// Impact prices an arbitrary current/suggested code pair without
// running the suggestion catalog.
func (s *Service) Impact(currentCodes, suggestedCodes []string) RWImpact {
	return CalculateRW(s.table, currentCodes, suggestedCodes, s.baseRate)
}
