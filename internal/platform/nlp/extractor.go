// Package nlp provides keyword-based symptom tagging for free-text clinical
// notes. It is an exact-match keyword matcher, not a statistical model; the
// differential scorer accepts symptom tags directly and does not depend on it.
package nlp

import "strings"

// Extractor maps symptom tags to the note keywords that imply them.
type Extractor struct {
	keywords map[string][]string
}

// DefaultKeywords returns the built-in symptom keyword table.
func DefaultKeywords() map[string][]string {
	return map[string][]string{
		"fever":       {"fever", "febrile", "high temperature"},
		"cough":       {"cough", "coughing", "productive cough"},
		"dyspnea":     {"dyspnea", "shortness of breath", "sob", "difficulty breathing", "breathless"},
		"sputum":      {"sputum", "purulent sputum", "yellow sputum"},
		"chest_pain":  {"chest pain", "chest tightness", "pleuritic pain"},
		"edema":       {"edema", "leg swelling", "pitting edema", "swollen legs"},
		"orthopnea":   {"orthopnea", "cannot lie flat", "unable to lie flat"},
		"pnd":         {"pnd", "paroxysmal nocturnal dyspnea", "waking at night breathless"},
		"polyuria":    {"polyuria", "frequent urination", "urinating often"},
		"polydipsia":  {"polydipsia", "excessive thirst", "drinking a lot"},
		"weight_loss": {"weight loss", "losing weight"},
		"fatigue":     {"fatigue", "tired", "weakness", "no energy"},
		"confusion":   {"confusion", "confused", "drowsy", "altered consciousness", "altered mental status"},
		"nausea":      {"nausea", "vomiting"},
		"hypotension": {"hypotension", "low blood pressure", "bp drop"},
	}
}

// NewExtractor builds an extractor over the given keyword table. Matching is
// case-insensitive substring containment.
func NewExtractor(keywords map[string][]string) *Extractor {
	return &Extractor{keywords: keywords}
}

// ExtractSymptoms returns the symptom tags whose keywords appear in the text.
// Each tag is reported at most once; order follows the first keyword hit and
// is not significant to callers.
func (e *Extractor) ExtractSymptoms(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for tag, kws := range e.keywords {
		for _, kw := range kws {
			if strings.Contains(lower, kw) {
				found = append(found, tag)
				break
			}
		}
	}
	return found
}

// Entity is a tagged span-level extraction result.
type Entity struct {
	Type   string `json:"type"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// ExtractEntities wraps extracted symptoms as tagged entities.
func (e *Extractor) ExtractEntities(text string) []Entity {
	var entities []Entity
	for _, s := range e.ExtractSymptoms(text) {
		entities = append(entities, Entity{Type: "SYMPTOM", Value: s, Source: "NLP"})
	}
	return entities
}
