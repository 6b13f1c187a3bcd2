package models

// ReviewItem is one named, citable check within a regulation domain's
// fixed checklist. The id prefix (LBL/ORI/PKG) identifies the owning domain.
type ReviewItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Clause      string `json:"clause"` // statute reference, e.g. "제3조, 제4조"
	Required    bool   `json:"required"`
}

// RegulationDomain is a static catalog entry for one regulation. Domains are
// defined at process start and never mutated.
type RegulationDomain struct {
	Key       string       `json:"key"`
	Name      string       `json:"name"`       // full statute name
	ShortName string       `json:"short_name"` // abbreviation used in results
	Items     []ReviewItem `json:"items"`
}

// Document keys for the three regulation domains. They double as the
// knowledge snapshot keys in the store.
const (
	DomainFoodLabeling = "food_labeling"
	DomainOrigin       = "origin_labeling"
	DomainPackaging    = "packaging_standards"
)

// RegulationSchema is the fixed review-item catalog for the three statutes,
// in evaluation order.
var RegulationSchema = []RegulationDomain{
	{
		Key:       DomainFoodLabeling,
		Name:      "식품등의 표시기준",
		ShortName: "표시기준",
		Items: []ReviewItem{
			{ID: "LBL-01", Title: "제품명", Description: "제품명이 식품유형에 맞게 표시되었는지", Clause: "제3조, 제4조", Required: true},
			{ID: "LBL-02", Title: "식품유형", Description: "식품공전상 분류에 맞는 식품유형 기재", Clause: "제4조", Required: true},
			{ID: "LBL-03", Title: "업소명 및 소재지", Description: "제조업소명(상호)과 소재지 기재", Clause: "제4조", Required: true},
			{ID: "LBL-04", Title: "소비기한(유통기한)", Description: "소비기한 또는 품질유지기한 표시 (2023.1.1부터 소비기한 전환)", Clause: "제5조", Required: true},
			{ID: "LBL-05", Title: "내용량", Description: "g, ml, 개수 등 단위와 함께 표시", Clause: "제4조", Required: true},
			{ID: "LBL-06", Title: "원재료명", Description: "함량 높은 순으로 표시, 복합원재료 괄호 처리, 2% 미만 순서무관", Clause: "제6조", Required: true},
			{ID: "LBL-07", Title: "성분함량 표시", Description: "주표시면에 특정 원재료명 강조 시 그 함량(%) 표시", Clause: "제6조의2", Required: true},
			{ID: "LBL-08", Title: "영양성분", Description: "열량, 탄수화물, 당류, 단백질, 지방, 포화지방, 트랜스지방, 콜레스테롤, 나트륨 9종 필수", Clause: "제7조", Required: true},
			{ID: "LBL-09", Title: "알레르기 유발물질", Description: "22종 알레르기 유발물질 함유 시 별도 표시 (난류, 우유, 메밀, 땅콩, 대두, 밀, 고등어, 게, 새우, 돼지고기, 복숭아, 토마토, 호두, 닭고기, 쇠고기, 오징어, 조개류, 잣, 아황산류 등)", Clause: "제8조", Required: true},
			{ID: "LBL-10", Title: "보관방법·주의사항", Description: "보관온도·방법, 섭취 시 주의사항", Clause: "제4조, 제10조", Required: true},
			{ID: "LBL-11", Title: "카페인 함량", Description: "카페인 1ml당 0.15mg 이상 시 '고카페인 함유' 및 총카페인 함량 표시", Clause: "제11조", Required: false},
			{ID: "LBL-12", Title: "과즙함량", Description: "과채음료에서 과즙함량 10% 이상 시 함량 표시", Clause: "제11조", Required: false},
			{ID: "LBL-13", Title: "나트륨 함량 비교표시", Description: "나트륨 저감 강조 시 비교대상 제품 및 저감률 표시", Clause: "제7조", Required: false},
			{ID: "LBL-14", Title: "글자크기", Description: "주표시면 및 정보표시면의 글자 크기 기준 충족", Clause: "제3조", Required: true},
			{ID: "LBL-15", Title: "부당한 표시·광고", Description: "의약품으로 오인할 표현, 허위·과대 표시·광고 금지", Clause: "제12조", Required: true},
		},
	},
	{
		Key:       DomainOrigin,
		Name:      "농수산물의 원산지 표시 등에 관한 법률 시행령/요령",
		ShortName: "원산지",
		Items: []ReviewItem{
			{ID: "ORI-01", Title: "원산지 표시 대상", Description: "원산지 표시 대상 원재료인지 확인 (농산물, 수산물, 축산물 등)", Clause: "시행령 제3조", Required: true},
			{ID: "ORI-02", Title: "원산지 표시방법", Description: "국가명(수입품) 또는 시·도명(국산) 표시", Clause: "시행령 제4조", Required: true},
			{ID: "ORI-03", Title: "배합비율 순 표시", Description: "2가지 이상 원산지 혼합 시 배합비율 높은 순으로 표시", Clause: "시행령 제4조", Required: true},
			{ID: "ORI-04", Title: "원산지 위치·크기", Description: "소비자가 쉽게 알아볼 수 있는 위치에 읽기 쉬운 크기로 표시", Clause: "표시요령 제5조", Required: true},
			{ID: "ORI-05", Title: "가공식품 원산지", Description: "사용된 원료 중 배합비율 1·2순위 원료의 원산지 표시", Clause: "표시요령 제6조", Required: true},
			{ID: "ORI-06", Title: "원산지 변경 시", Description: "원산지 변경 시 기존 재고 소진기간 내 변경 표시", Clause: "표시요령 제7조", Required: false},
		},
	},
	{
		Key:       DomainPackaging,
		Name:      "기구 및 용기·포장의 기준 및 규격",
		ShortName: "용기규격",
		Items: []ReviewItem{
			{ID: "PKG-01", Title: "재질 표시", Description: "용기·포장 재질 종류 표시 (PET, PP, PE, 유리 등)", Clause: "제2조", Required: true},
			{ID: "PKG-02", Title: "용출·침출시험", Description: "식품과 접촉하는 면의 용출·침출 시험 적합 여부", Clause: "제3조", Required: true},
			{ID: "PKG-03", Title: "중금속 기준", Description: "납, 카드뮴, 수은 등 중금속 용출 기준 이내", Clause: "제3조, 별표", Required: true},
			{ID: "PKG-04", Title: "재활용 표시", Description: "분리배출 표시(재질·구조 등급 표시)", Clause: "자원재활용법", Required: true},
			{ID: "PKG-05", Title: "내열온도 적합", Description: "충전·살균 온도에 적합한 내열성 보유", Clause: "제4조", Required: true},
			{ID: "PKG-06", Title: "차광성", Description: "빛에 의한 품질변화 방지를 위한 차광성 (해당 시)", Clause: "제4조", Required: false},
			{ID: "PKG-07", Title: "가스차단성", Description: "탄산가스 유지를 위한 가스차단성 (탄산음료 해당)", Clause: "제4조", Required: false},
		},
	},
}

// Allergens22 lists the 22 substances that trigger the mandatory allergen
// statement under 식품등의 표시기준 제8조.
var Allergens22 = []string{
	"난류(가금류)", "우유", "메밀", "땅콩", "대두", "밀", "고등어", "게", "새우", "돼지고기",
	"복숭아", "토마토", "호두", "닭고기", "쇠고기", "오징어", "조개류(굴,전복,홍합포함)",
	"잣", "아황산류", "참깨", "아몬드", "잔새우(크릴)",
}

// DomainByKey returns the regulation domain for a document key.
func DomainByKey(key string) (*RegulationDomain, bool) {
	for i := range RegulationSchema {
		if RegulationSchema[i].Key == key {
			return &RegulationSchema[i], true
		}
	}
	return nil, false
}

// ReviewItemByID looks up a review item and its owning domain by item id.
func ReviewItemByID(id string) (*RegulationDomain, *ReviewItem, bool) {
	for i := range RegulationSchema {
		for j := range RegulationSchema[i].Items {
			if RegulationSchema[i].Items[j].ID == id {
				return &RegulationSchema[i], &RegulationSchema[i].Items[j], true
			}
		}
	}
	return nil, nil, false
}

// DomainKeys returns the document keys of all registered domains, in
// schema order.
func DomainKeys() []string {
	keys := make([]string, 0, len(RegulationSchema))
	for i := range RegulationSchema {
		keys = append(keys, RegulationSchema[i].Key)
	}
	return keys
}
