package models

// Verdict is the outcome of a single review-item evaluation.
type Verdict string

const (
	VerdictPass    Verdict = "pass"
	VerdictWarning Verdict = "warning"
	VerdictFail    Verdict = "fail"
	// VerdictUnknown means the field was left blank and no determination is
	// possible yet. Distinct from Fail: a required field affirmatively
	// missing counts against the overall verdict.
	VerdictUnknown Verdict = "unknown"
)

// OverallVerdict summarizes a whole result list.
type OverallVerdict string

const (
	OverallCompliant    OverallVerdict = "compliant"
	OverallConditional  OverallVerdict = "conditional"
	OverallNonCompliant OverallVerdict = "non_compliant"
)

// ComplianceResult is one review item's evaluation. Immutable once created.
type ComplianceResult struct {
	ItemID  string  `json:"id"`
	Domain  string  `json:"domain"` // regulation short name, e.g. "표시기준"
	Title   string  `json:"title"`
	Value   string  `json:"value"` // echoed input, possibly truncated for display
	Verdict Verdict `json:"verdict"`
	Reason  string  `json:"reason"`
	Clause  string  `json:"clause"`
}

// ComplianceSummary is the aggregate over one evaluation's results.
type ComplianceSummary struct {
	Total   int            `json:"total"`
	Pass    int            `json:"pass"`
	Warning int            `json:"warning"`
	Fail    int            `json:"fail"`
	Unknown int            `json:"unknown"`
	Rate    float64        `json:"rate"` // pass percentage, 0 when Total is 0
	Overall OverallVerdict `json:"overall"`
}
