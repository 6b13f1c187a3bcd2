package service

import (
	"fmt"
	"strings"

	"labelguard-backend/models"
)

// DefaultConditionalFailLimit is the number of failed items up to which an
// otherwise non-compliant label is still rated conditional.
const DefaultConditionalFailLimit = 2

// ComplianceService evaluates a label record against the regulation
// schema. It is stateless and safe for unbounded concurrent use.
type ComplianceService struct {
	conditionalFailLimit int
}

// ComplianceServiceOption is a functional option for ComplianceService.
type ComplianceServiceOption func(*ComplianceService)

// WithConditionalFailLimit overrides the fail count up to which the
// overall verdict stays conditional.
func WithConditionalFailLimit(limit int) ComplianceServiceOption {
	return func(s *ComplianceService) {
		s.conditionalFailLimit = limit
	}
}

// NewComplianceService creates a new compliance service.
func NewComplianceService(opts ...ComplianceServiceOption) *ComplianceService {
	s := &ComplianceService{
		conditionalFailLimit: DefaultConditionalFailLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Evaluate runs every applicable validator over the record, in fixed
// domain order. It never fails: malformed values are stringified and a
// missing field behaves like an empty string. Conditional validators
// whose trigger is absent contribute no result.
func (s *ComplianceService) Evaluate(record models.LabelRecord) []models.ComplianceResult {
	var results []models.ComplianceResult
	for i := range fieldRules {
		if r := evaluateRule(&fieldRules[i], record); r != nil {
			results = append(results, *r)
		}
	}
	return results
}

// Summarize reduces a result list to counts, the pass rate, and the
// overall verdict. Unknown results block a compliant rating just as
// fails do, but only fails count toward the conditional limit.
func (s *ComplianceService) Summarize(results []models.ComplianceResult) models.ComplianceSummary {
	summary := models.ComplianceSummary{Total: len(results)}
	for _, r := range results {
		switch r.Verdict {
		case models.VerdictPass:
			summary.Pass++
		case models.VerdictWarning:
			summary.Warning++
		case models.VerdictFail:
			summary.Fail++
		case models.VerdictUnknown:
			summary.Unknown++
		}
	}
	if summary.Total > 0 {
		summary.Rate = float64(summary.Pass) / float64(summary.Total) * 100
	}

	switch {
	case summary.Fail == 0 && summary.Unknown == 0:
		summary.Overall = models.OverallCompliant
	case summary.Fail <= s.conditionalFailLimit:
		summary.Overall = models.OverallConditional
	default:
		summary.Overall = models.OverallNonCompliant
	}
	return summary
}

// evaluateRule interprets one descriptor. A nil result means the rule was
// not applicable to this record.
func evaluateRule(rule *fieldRule, record models.LabelRecord) *models.ComplianceResult {
	var verdict models.Verdict
	var reason string

	value := record.Field(rule.field)

	switch rule.kind {
	case kindPresence:
		verdict, reason = evalPresence(rule, value)
	case kindComposite:
		verdict, reason = evalComposite(rule, record)
	case kindFormat:
		verdict, reason = evalFormat(rule, value)
	case kindThreshold:
		verdict, reason = evalThreshold(rule, value)
	case kindConditional:
		trigger := strings.ToLower(record.Field(rule.triggerField))
		if !containsAny(trigger, rule.triggerTerms) {
			return nil
		}
		verdict, reason = evalConditional(rule, value)
	case kindHeuristic:
		if rule.triggerField != "" {
			trigger := record.Field(rule.triggerField)
			if len(rule.triggerTerms) == 0 && trigger == "" {
				return nil
			}
			if len(rule.triggerTerms) > 0 && !containsAny(strings.ToLower(trigger), rule.triggerTerms) {
				return nil
			}
		}
		verdict, reason = evalHeuristic(rule, value)
	default:
		return nil
	}

	// Terminology drift is a non-blocking annotation, never a downgrade.
	if verdict == models.VerdictPass && rule.driftTerm != "" && strings.Contains(value, rule.driftTerm) {
		reason += rule.driftNote
	}

	domain, item, ok := models.ReviewItemByID(rule.itemID)
	if !ok {
		return nil
	}
	return &models.ComplianceResult{
		ItemID:  rule.itemID,
		Domain:  domain.ShortName,
		Title:   item.Title,
		Value:   echoValue(rule, record, value),
		Verdict: verdict,
		Reason:  reason,
		Clause:  item.Clause,
	}
}

func evalPresence(rule *fieldRule, value string) (models.Verdict, string) {
	if value != "" {
		return models.VerdictPass, rule.passReason
	}
	return models.VerdictFail, rule.failReason
}

// evalComposite requires every sub-part for a pass; some-but-not-all is a
// warning, none at all a fail.
func evalComposite(rule *fieldRule, record models.LabelRecord) (models.Verdict, string) {
	var missing []string
	present := 0
	for _, part := range rule.parts {
		if record.Field(part.field) != "" {
			present++
		} else {
			missing = append(missing, part.name)
		}
	}
	switch {
	case len(missing) == 0:
		return models.VerdictPass, rule.passReason
	case present > 0:
		return models.VerdictWarning, strings.Join(missing, "·") + " 누락"
	default:
		return models.VerdictFail, strings.Join(missing, "·") + " 누락"
	}
}

func evalFormat(rule *fieldRule, value string) (models.Verdict, string) {
	switch {
	case rule.pattern.MatchString(value):
		return models.VerdictPass, rule.passReason
	case value != "":
		return models.VerdictWarning, rule.warnReason
	default:
		return models.VerdictFail, rule.failReason
	}
}

// evalThreshold counts satisfied sub-criteria: either required terms found
// in the value, or comma-separated list items.
func evalThreshold(rule *fieldRule, value string) (models.Verdict, string) {
	if rule.splitList {
		count := 0
		for _, item := range strings.Split(value, ",") {
			if strings.TrimSpace(item) != "" {
				count++
			}
		}
		if count >= rule.minItems {
			return models.VerdictPass, fmt.Sprintf("원재료 %d종 표시 (함량순 배열 여부 확인 필요)", count)
		}
		return models.VerdictFail, rule.failReason
	}

	var missing []string
	found := 0
	for _, term := range rule.terms {
		if strings.Contains(value, term) {
			found++
		} else {
			missing = append(missing, term)
		}
	}
	reason := fmt.Sprintf("%d종 중 %d종 표시", len(rule.terms), found)
	if len(missing) > 0 {
		reason += " — 누락: " + strings.Join(missing, ", ")
	} else {
		reason += " (전체 충족)"
	}
	switch {
	case found >= rule.passCount:
		return models.VerdictPass, reason
	case found >= rule.warnCount:
		return models.VerdictWarning, reason
	default:
		return models.VerdictFail, reason
	}
}

// evalConditional runs only after the trigger fired: the declaration must
// be present and must not claim the rule does not apply.
func evalConditional(rule *fieldRule, value string) (models.Verdict, string) {
	if value != "" && !strings.Contains(value, rule.naToken) {
		return models.VerdictPass, rule.passReason
	}
	return models.VerdictFail, rule.failReason
}

// evalHeuristic covers the advisory checks: recognized-vocabulary lookups,
// pattern presence, and attestation tokens. A blank value yields the
// rule's configured absent verdict (Unknown when no determination is
// possible yet).
func evalHeuristic(rule *fieldRule, value string) (models.Verdict, string) {
	if rule.requireToken != "" {
		switch {
		case strings.Contains(value, rule.requireToken):
			return models.VerdictPass, rule.passReason
		case value != "":
			return models.VerdictWarning, rule.warnReason
		default:
			return rule.absentVerdict, rule.unknownReason
		}
	}

	if rule.pattern != nil {
		if rule.pattern.MatchString(value) {
			return models.VerdictPass, rule.passReason
		}
		return models.VerdictWarning, rule.warnReason
	}

	if value == "" && rule.absentVerdict != "" {
		return rule.absentVerdict, rule.failReason
	}
	if containsAny(strings.ToLower(value), lowerAll(rule.vocab)) {
		return models.VerdictPass, formatReason(rule.passReason, value)
	}
	return models.VerdictWarning, rule.warnReason
}

// echoValue renders the input value echoed back in the result, applying
// the rule's custom formatter and display truncation.
func echoValue(rule *fieldRule, record models.LabelRecord, value string) string {
	if rule.echo != nil {
		value = rule.echo(record)
	} else if rule.kind == kindComposite {
		parts := make([]string, 0, len(rule.parts))
		for _, part := range rule.parts {
			parts = append(parts, record.Field(part.field))
		}
		value = strings.Join(parts, " / ")
	}
	if rule.echoLimit > 0 {
		value = truncateDisplay(value, rule.echoLimit)
	}
	return value
}

func truncateDisplay(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func formatReason(reason, value string) string {
	if strings.Contains(reason, "%s") {
		return fmt.Sprintf(reason, value)
	}
	return reason
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func lowerAll(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strings.ToLower(t)
	}
	return out
}
