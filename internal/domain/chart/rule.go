package chart

// Rule categories; weights are relative within a category, not across.
const (
	CategoryDiagnosis     = "DIAGNOSIS"
	CategoryProcedure     = "PROCEDURE"
	CategoryConsistency   = "CONSISTENCY"
	CategoryDocumentation = "DOCUMENTATION"
)

const (
	SeverityCritical = "CRITICAL"
	SeverityWarning  = "WARNING"
)

// Comparison operators used by threshold conditions.
const (
	OpGTE = ">="
	OpGT  = ">"
	OpLT  = "<"
	// OpIncreaseFromBaseline has no baseline data source yet and
	// degrades to a diagnosis-presence check.
	OpIncreaseFromBaseline = "INCREASE_FROM_BASELINE"
)

// Rule is one completeness check. Rules are immutable configuration:
// loaded once, referenced by ID in reported gaps.
type Rule struct {
	ID        string
	Category  string
	Name      string
	Weight    float64
	Condition Condition
	Active    bool
}

// Condition is the closed set of rule condition variants. Evaluation
// is fail-open: conditions the engine cannot assess count as passed.
type Condition interface {
	isCondition()
}

// RequiredField checks that a named chart section is present.
type RequiredField struct {
	Field          string
	RequiredAction string
}

// LabThreshold fires when a lab crosses a threshold and the suggested
// diagnosis code is missing from the chart.
type LabThreshold struct {
	LabCode        string
	Operator       string
	Threshold      float64
	RequiredAction string
	SuggestedCode  string
}

// VitalThreshold is LabThreshold over a vital-sign reading.
type VitalThreshold struct {
	VitalCode      string
	Operator       string
	Threshold      float64
	RequiredAction string
	SuggestedCode  string
}

// RequiredIf checks a documentation requirement that only applies when
// a trigger state holds.
type RequiredIf struct {
	Trigger        string
	RequiredAction string
	SuggestedCode  string
}

// ConsistencyCheck cross-checks two chart sections by named check.
type ConsistencyCheck struct {
	Check string
}

// ScoreThreshold would gate on a computed clinical score. No score
// feed is wired in yet, so it always passes.
type ScoreThreshold struct {
	ScoreCode      string
	Operator       string
	Threshold      float64
	RequiredAction string
	SuggestedCode  string
}

func (RequiredField) isCondition()    {}
func (LabThreshold) isCondition()     {}
func (VitalThreshold) isCondition()   {}
func (RequiredIf) isCondition()       {}
func (ConsistencyCheck) isCondition() {}
func (ScoreThreshold) isCondition()   {}

// suggestion returns the action/code a failed condition should report.
func suggestion(c Condition) (action, code string) {
	switch v := c.(type) {
	case RequiredField:
		return v.RequiredAction, ""
	case LabThreshold:
		return v.RequiredAction, v.SuggestedCode
	case VitalThreshold:
		return v.RequiredAction, v.SuggestedCode
	case RequiredIf:
		return v.RequiredAction, v.SuggestedCode
	case ScoreThreshold:
		return v.RequiredAction, v.SuggestedCode
	}
	return "", ""
}
