package service_test

import (
	"testing"

	"labelguard-backend/models"
	"labelguard-backend/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultByID(t *testing.T, results []models.ComplianceResult, id string) models.ComplianceResult {
	t.Helper()
	for _, r := range results {
		if r.ItemID == id {
			return r
		}
	}
	t.Fatalf("no result for item %s", id)
	return models.ComplianceResult{}
}

func hasResult(results []models.ComplianceResult, id string) bool {
	for _, r := range results {
		if r.ItemID == id {
			return true
		}
	}
	return false
}

func TestComplianceService_CompliantSamplePassesEverything(t *testing.T) {
	svc := service.NewComplianceService()

	results := svc.Evaluate(models.SampleLabels["탄산음료 (정상)"])

	require.NotEmpty(t, results)
	for _, r := range results {
		assert.Equal(t, models.VerdictPass, r.Verdict, "item %s: %s", r.ItemID, r.Reason)
	}
	// No caffeine ingredients, so the caffeine check does not apply.
	assert.False(t, hasResult(results, "LBL-11"))

	nutrition := resultByID(t, results, "LBL-08")
	assert.Contains(t, nutrition.Reason, "9종 중 9종 표시")

	summary := svc.Summarize(results)
	assert.Equal(t, models.OverallCompliant, summary.Overall)
	assert.Equal(t, float64(100), summary.Rate)
	assert.Zero(t, summary.Fail)
	assert.Zero(t, summary.Unknown)
}

func TestComplianceService_NonCompliantSampleFlagsGaps(t *testing.T) {
	svc := service.NewComplianceService()

	results := svc.Evaluate(models.SampleLabels["에너지음료 (부적합 예시)"])
	summary := svc.Summarize(results)

	assert.Equal(t, models.VerdictFail, resultByID(t, results, "LBL-02").Verdict)
	assert.Equal(t, models.VerdictFail, resultByID(t, results, "LBL-09").Verdict)
	assert.Equal(t, models.VerdictFail, resultByID(t, results, "ORI-01").Verdict)
	assert.Equal(t, models.VerdictWarning, resultByID(t, results, "LBL-03").Verdict)
	assert.Equal(t, models.VerdictUnknown, resultByID(t, results, "PKG-02").Verdict)

	// Caffeine is in the ingredient list but no content is declared.
	caffeine := resultByID(t, results, "LBL-11")
	assert.Equal(t, models.VerdictFail, caffeine.Verdict)

	assert.Greater(t, summary.Fail, 2)
	assert.Equal(t, models.OverallNonCompliant, summary.Overall)
}

func TestComplianceService_CaffeineCheckOnlyAppliesWhenTriggered(t *testing.T) {
	svc := service.NewComplianceService()

	plain := models.LabelRecord{models.FieldIngredients: "정제수, 설탕, 천연향료"}
	assert.False(t, hasResult(svc.Evaluate(plain), "LBL-11"))

	caffeinated := models.LabelRecord{
		models.FieldIngredients:     "정제수, 녹차추출물, 설탕",
		models.FieldCaffeineContent: "총카페인 60mg",
	}
	r := resultByID(t, svc.Evaluate(caffeinated), "LBL-11")
	assert.Equal(t, models.VerdictPass, r.Verdict)

	undeclared := models.LabelRecord{models.FieldIngredients: "커피농축액, 정제수"}
	r = resultByID(t, svc.Evaluate(undeclared), "LBL-11")
	assert.Equal(t, models.VerdictFail, r.Verdict)
}

func TestComplianceService_NetContentRequiresUnit(t *testing.T) {
	svc := service.NewComplianceService()

	withUnit := resultByID(t, svc.Evaluate(models.LabelRecord{models.FieldNetContent: "500ml"}), "LBL-05")
	assert.Equal(t, models.VerdictPass, withUnit.Verdict)

	bare := resultByID(t, svc.Evaluate(models.LabelRecord{models.FieldNetContent: "500"}), "LBL-05")
	assert.Equal(t, models.VerdictWarning, bare.Verdict)

	missing := resultByID(t, svc.Evaluate(models.LabelRecord{}), "LBL-05")
	assert.Equal(t, models.VerdictFail, missing.Verdict)
}

func TestComplianceService_CompositePartialIsWarning(t *testing.T) {
	svc := service.NewComplianceService()

	record := models.LabelRecord{models.FieldBusinessName: "주식회사 프레시음료"}
	r := resultByID(t, svc.Evaluate(record), "LBL-03")

	assert.Equal(t, models.VerdictWarning, r.Verdict)
	assert.Contains(t, r.Reason, "소재지")
	assert.Contains(t, r.Reason, "누락")
}

func TestComplianceService_ExpiryTermDriftAnnotatedOnPass(t *testing.T) {
	svc := service.NewComplianceService()

	record := models.LabelRecord{models.FieldExpiryDate: "유통기한 2026.12.31까지"}
	r := resultByID(t, svc.Evaluate(record), "LBL-04")

	assert.Equal(t, models.VerdictPass, r.Verdict)
	assert.Contains(t, r.Reason, "소비기한")
	assert.Contains(t, r.Reason, "유통기한")
}

func TestComplianceService_MaterialVocabulary(t *testing.T) {
	svc := service.NewComplianceService()

	known := resultByID(t, svc.Evaluate(models.LabelRecord{models.FieldContainerMaterial: "PET"}), "PKG-01")
	assert.Equal(t, models.VerdictPass, known.Verdict)
	assert.Contains(t, known.Reason, "PET")

	odd := resultByID(t, svc.Evaluate(models.LabelRecord{models.FieldContainerMaterial: "신소재"}), "PKG-01")
	assert.Equal(t, models.VerdictWarning, odd.Verdict)

	missing := resultByID(t, svc.Evaluate(models.LabelRecord{}), "PKG-01")
	assert.Equal(t, models.VerdictFail, missing.Verdict)
}

func TestComplianceService_LeachTestUnknownWhenUndeclared(t *testing.T) {
	svc := service.NewComplianceService()

	r := resultByID(t, svc.Evaluate(models.LabelRecord{}), "PKG-02")
	assert.Equal(t, models.VerdictUnknown, r.Verdict)
}

func TestComplianceService_SummarizeOverallThresholds(t *testing.T) {
	svc := service.NewComplianceService()

	mk := func(fails, unknowns, passes int) []models.ComplianceResult {
		var results []models.ComplianceResult
		for i := 0; i < fails; i++ {
			results = append(results, models.ComplianceResult{Verdict: models.VerdictFail})
		}
		for i := 0; i < unknowns; i++ {
			results = append(results, models.ComplianceResult{Verdict: models.VerdictUnknown})
		}
		for i := 0; i < passes; i++ {
			results = append(results, models.ComplianceResult{Verdict: models.VerdictPass})
		}
		return results
	}

	assert.Equal(t, models.OverallCompliant, svc.Summarize(mk(0, 0, 5)).Overall)
	// A single unknown blocks a compliant rating.
	assert.Equal(t, models.OverallConditional, svc.Summarize(mk(0, 1, 5)).Overall)
	assert.Equal(t, models.OverallConditional, svc.Summarize(mk(2, 0, 5)).Overall)
	assert.Equal(t, models.OverallNonCompliant, svc.Summarize(mk(3, 0, 5)).Overall)

	strict := service.NewComplianceService(service.WithConditionalFailLimit(0))
	assert.Equal(t, models.OverallNonCompliant, strict.Summarize(mk(1, 0, 5)).Overall)
}

func TestComplianceService_SummarizeRate(t *testing.T) {
	svc := service.NewComplianceService()

	empty := svc.Summarize(nil)
	assert.Zero(t, empty.Total)
	assert.Zero(t, empty.Rate)
	assert.Equal(t, models.OverallCompliant, empty.Overall)

	mixed := svc.Summarize([]models.ComplianceResult{
		{Verdict: models.VerdictPass},
		{Verdict: models.VerdictPass},
		{Verdict: models.VerdictWarning},
	})
	assert.Equal(t, 3, mixed.Total)
	assert.InDelta(t, 66.67, mixed.Rate, 0.01)
}
