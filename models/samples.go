package models

// SampleLabels holds built-in label records for demos and tests: one fully
// compliant carbonated drink and one energy drink with the typical gaps an
// inspection would flag.
var SampleLabels = map[string]LabelRecord{
	"탄산음료 (정상)": {
		FieldProductName:       "스파클링 레몬에이드",
		FieldFoodType:          "탄산음료",
		FieldBusinessName:      "주식회사 프레시음료",
		FieldAddress:           "경기도 이천시 마장면 산업단지로 55",
		FieldExpiryDate:        "제조일로부터 12개월",
		FieldNetContent:        "500ml",
		FieldIngredients:       "정제수, 과당포도당액(국산), 구연산, 이산화탄소, 레몬농축과즙(이탈리아산)3%, 비타민C, 천연향료",
		FieldNutrition:         "1회 제공량 250ml / 열량 45kcal, 탄수화물 11g, 당류 10g, 단백질 0g, 지방 0g, 포화지방 0g, 트랜스지방 0g, 콜레스테롤 0mg, 나트륨 15mg",
		FieldAllergens:         "해당없음",
		FieldStorageMethod:     "직사광선을 피하고 서늘한 곳에 보관",
		FieldCaution:           "개봉 후 냉장보관, 어린이 과다섭취 주의",
		FieldCaffeineContent:   "해당없음",
		FieldJuiceContent:      "레몬과즙 3%",
		FieldOriginPrimary:     "정제수(국산)",
		FieldOriginSecondary:   "과당포도당액(국산)",
		FieldContainerMaterial: "PET",
		FieldLeachTest:         "적합",
		FieldRecyclingMark:     "PET 1등급",
	},
	"에너지음료 (부적합 예시)": {
		FieldProductName:       "울트라 에너지부스트",
		FieldFoodType:          "",
		FieldBusinessName:      "OO에너지",
		FieldAddress:           "",
		FieldExpiryDate:        "2025.12",
		FieldNetContent:        "250ml",
		FieldIngredients:       "정제수, 포도당, 타우린, 카페인, 구연산, 합성향료, 비타민B군",
		FieldNutrition:         "열량 46kcal, 당류 10g",
		FieldAllergens:         "",
		FieldStorageMethod:     "",
		FieldCaution:           "",
		FieldCaffeineContent:   "",
		FieldJuiceContent:      "",
		FieldOriginPrimary:     "",
		FieldOriginSecondary:   "",
		FieldContainerMaterial: "알루미늄캔",
		FieldLeachTest:         "",
		FieldRecyclingMark:     "",
	},
}
