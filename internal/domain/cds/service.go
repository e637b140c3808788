package cds

import "fmt"

// SymptomExtractor tags symptom codes in free clinical text. Optional:
// a nil extractor means chief-complaint text is ignored.
type SymptomExtractor interface {
	ExtractSymptoms(text string) []string
}

// Service evaluates decision-support requests against the immutable
// knowledge graph and order template catalog it was constructed with.
type Service struct {
	graph     *Graph
	templates OrderTemplates
	extractor SymptomExtractor
}

func NewService(graph *Graph, templates OrderTemplates, extractor SymptomExtractor) *Service {
	return &Service{graph: graph, templates: templates, extractor: extractor}
}

func (s *Service) PreDiagnosis(req PreDiagnosisRequest) (*PreDiagnosisResponse, error) {
	symptoms := req.Symptoms
	if s.extractor != nil && req.ChiefComplaint != nil {
		symptoms = mergeSymptoms(symptoms, s.extractor.ExtractSymptoms(*req.ChiefComplaint))
	}

	// An empty symptom list is a valid query: it simply matches nothing.
	differentials := RankDifferentials(s.graph, symptoms, req.Age, req.PMH, req.Labs)

	primaryGroup := "GENERAL"
	note := "no matching differential diagnosis found"
	if len(differentials) > 0 {
		primaryGroup = s.graph.GroupFor(differentials[0].ICDCode, GroupCAP)
		note = "computed by knowledge graph traversal"
	}

	return &PreDiagnosisResponse{
		Differentials:       differentials,
		PrimaryDiseaseGroup: primaryGroup,
		ConfidenceNote:      note,
	}, nil
}

func (s *Service) OrderSuggestion(req OrderSuggestionRequest) (*OrderSuggestionResponse, error) {
	if req.ICDCode == "" {
		return nil, fmt.Errorf("icd_code is required")
	}

	group := s.graph.GroupFor(req.ICDCode, GroupCAP)
	orders, ok := s.templates[group]
	if !ok {
		orders = s.templates[GroupCAP]
	}

	return &OrderSuggestionResponse{
		Orders:               orders,
		DiseaseGroup:         group,
		PersonalizationNotes: Personalize(req),
	}, nil
}

func (s *Service) AdmissionDecision(req AdmissionDecisionRequest) (*AdmissionDecisionResponse, error) {
	if req.ICDCode == "" {
		return nil, fmt.Errorf("icd_code is required")
	}

	group := s.graph.GroupFor(req.ICDCode, GroupCAP)
	resp := DecideAdmission(group, req.Vitals, req.Age, req.Confusion, req.Urea)
	return &resp, nil
}

func mergeSymptoms(explicit, extracted []string) []string {
	seen := make(map[string]bool, len(explicit)+len(extracted))
	merged := make([]string, 0, len(explicit)+len(extracted))
	for _, s := range explicit {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	for _, s := range extracted {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	return merged
}
