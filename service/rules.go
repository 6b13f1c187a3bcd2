package service

import (
	"regexp"

	"labelguard-backend/models"
)

// ruleKind selects which evaluator interprets a fieldRule.
type ruleKind string

const (
	kindPresence    ruleKind = "presence"    // non-empty value passes
	kindComposite   ruleKind = "composite"   // all sub-parts pass, some warn, none fail
	kindFormat      ruleKind = "format"      // value must match a pattern
	kindThreshold   ruleKind = "threshold"   // count satisfied sub-criteria
	kindConditional ruleKind = "conditional" // only applies when a trigger keyword is present
	kindHeuristic   ruleKind = "heuristic"   // vocabulary/pattern/attestation checks
)

// rulePart is one sub-part of a composite field, with its Korean display
// name for reason texts.
type rulePart struct {
	field string
	name  string
}

// fieldRule is a declarative validator descriptor. Only the parameters
// relevant to its kind are set; the evaluators in compliance_service.go
// interpret the table.
type fieldRule struct {
	itemID string
	kind   ruleKind

	field     string
	parts     []rulePart
	echo      func(models.LabelRecord) string // optional custom value echo
	echoLimit int                             // rune cap on the echoed value

	pattern *regexp.Regexp

	terms     []string // threshold: required terms to find in the value
	passCount int
	warnCount int
	splitList bool // threshold: count comma-separated items instead
	minItems  int

	triggerField string   // conditional/heuristic: skip unless trigger fires
	triggerTerms []string // empty means "trigger field is non-empty"
	naToken      string   // explicit not-applicable marker defeats a pass

	vocab         []string       // heuristic: recognized vocabulary
	requireToken  string         // heuristic: token required for a pass
	absentVerdict models.Verdict // heuristic: verdict for a blank value

	driftTerm string // superseded terminology flagged on pass
	driftNote string

	passReason    string // may contain one %s for the value
	warnReason    string
	failReason    string
	unknownReason string
}

// Quantity-with-unit pattern for 내용량 and the origin parenthetical for
// 원재료명.
var (
	netContentPattern   = regexp.MustCompile(`(?i)\d+\s*(ml|g|kg|L|개|매|EA)`)
	originParenthetical = regexp.MustCompile(`\(.*?산\)`)
)

// The nine nutrient terms the nutrition string must mention (제7조).
var nutritionTerms = []string{
	"열량", "탄수화물", "당류", "단백질", "지방", "포화지방", "트랜스지방", "콜레스테롤", "나트륨",
}

// Ingredient keywords that make the caffeine declaration mandatory.
var caffeineTriggers = []string{"카페인", "커피", "과라나", "녹차추출"}

// Tokens that count as an explicit origin marking.
var originMarkers = []string{"국산", "수입", "산)", "국내산", "외국산"}

// Container materials recognized without review.
var knownMaterials = []string{
	"PET", "PP", "PE", "HDPE", "LDPE", "PS", "유리", "알루미늄", "캔", "종이팩", "테트라팩",
}

// fieldRules is the full validator table, in result order: 표시기준, then
// 원산지, then 용기규격. Schema items without an automated check (e.g.
// 글자크기, 중금속 기준) are reviewed manually and carry no entry here.
var fieldRules = []fieldRule{
	{
		itemID:     "LBL-01",
		kind:       kindPresence,
		field:      models.FieldProductName,
		passReason: "제품명 기재됨",
		failReason: "제품명 누락 — 제4조 위반",
	},
	{
		itemID:     "LBL-02",
		kind:       kindPresence,
		field:      models.FieldFoodType,
		passReason: "식품유형 기재됨",
		failReason: "식품유형 누락 — 식품공전상 분류명 필수 기재",
	},
	{
		itemID: "LBL-03",
		kind:   kindComposite,
		parts: []rulePart{
			{field: models.FieldBusinessName, name: "업소명"},
			{field: models.FieldAddress, name: "소재지"},
		},
		passReason: "업소명·소재지 기재됨",
	},
	{
		itemID:     "LBL-04",
		kind:       kindPresence,
		field:      models.FieldExpiryDate,
		passReason: "소비기한 표시됨",
		failReason: "소비기한 누락",
		driftTerm:  "유통기한",
		driftNote:  " (⚠️ '유통기한' 용어 → 2023.1.1부터 '소비기한'으로 변경 필요)",
	},
	{
		itemID:     "LBL-05",
		kind:       kindFormat,
		field:      models.FieldNetContent,
		pattern:    netContentPattern,
		passReason: "내용량 단위 포함 표시됨",
		warnReason: "단위(ml, g 등) 확인 필요",
		failReason: "내용량 누락",
	},
	{
		itemID:     "LBL-06",
		kind:       kindThreshold,
		field:      models.FieldIngredients,
		splitList:  true,
		minItems:   2,
		echoLimit:  80,
		failReason: "원재료명 누락 또는 부족",
	},
	{
		itemID:    "LBL-08",
		kind:      kindThreshold,
		field:     models.FieldNutrition,
		terms:     nutritionTerms,
		passCount: 9,
		warnCount: 5,
		echoLimit: 80,
	},
	{
		itemID:     "LBL-09",
		kind:       kindPresence,
		field:      models.FieldAllergens,
		passReason: "알레르기 표시됨 (원재료 대비 정확성 확인 필요)",
		failReason: "알레르기 유발물질 표시 누락 — 해당없음이라도 기재 권장",
	},
	{
		itemID: "LBL-10",
		kind:   kindComposite,
		parts: []rulePart{
			{field: models.FieldStorageMethod, name: "보관방법"},
			{field: models.FieldCaution, name: "주의사항"},
		},
		passReason: "보관방법·주의사항 기재됨",
	},
	{
		itemID:       "LBL-11",
		kind:         kindConditional,
		field:        models.FieldCaffeineContent,
		triggerField: models.FieldIngredients,
		triggerTerms: caffeineTriggers,
		naToken:      "해당없음",
		passReason:   "카페인 함량 표시됨",
		failReason:   "카페인 함유 원료 사용 → 고카페인 표시 및 총카페인 함량 기재 필요",
	},
	{
		itemID: "ORI-01",
		kind:   kindPresence,
		field:  models.FieldOriginPrimary,
		echo: func(r models.LabelRecord) string {
			return "1순위: " + r.Field(models.FieldOriginPrimary) + " / 2순위: " + r.Field(models.FieldOriginSecondary)
		},
		passReason: "주원료 원산지 표시됨",
		failReason: "주원료 원산지 미표시 — 배합비율 1순위 이상 원료의 원산지 표시 필수",
	},
	{
		itemID:       "ORI-02",
		kind:         kindHeuristic,
		field:        models.FieldOriginPrimary,
		triggerField: models.FieldOriginPrimary, // skipped when no primary origin given
		vocab:        originMarkers,
		passReason:   "국가명/국산 표기 확인됨",
		warnReason:   "원산지 국가명 또는 '국산' 표기가 명확하지 않음",
	},
	{
		itemID:     "ORI-05",
		kind:       kindHeuristic,
		field:      models.FieldIngredients,
		pattern:    originParenthetical,
		echoLimit:  60,
		passReason: "원재료명에 원산지 괄호 표기 확인됨",
		warnReason: "원재료명에 원산지(국산, OO산) 표기 확인 필요",
	},
	{
		itemID:        "PKG-01",
		kind:          kindHeuristic,
		field:         models.FieldContainerMaterial,
		vocab:         knownMaterials,
		absentVerdict: models.VerdictFail,
		passReason:    "재질 '%s' 확인됨",
		warnReason:    "재질 표기 확인 필요",
		failReason:    "용기 재질 미기재",
	},
	{
		itemID:        "PKG-02",
		kind:          kindHeuristic,
		field:         models.FieldLeachTest,
		requireToken:  "적합",
		absentVerdict: models.VerdictUnknown,
		passReason:    "용출시험 적합 확인됨",
		warnReason:    "시험 결과 확인 필요",
		unknownReason: "용출시험 결과 미기재 — 식품접촉 재질의 용출·침출시험 성적서 필요",
	},
	{
		itemID:     "PKG-04",
		kind:       kindPresence,
		field:      models.FieldRecyclingMark,
		passReason: "재활용(분리배출) 표시 확인됨",
		failReason: "재활용 표시 누락 — 분리배출 표시(재질·구조 등급) 필수",
	},
}
