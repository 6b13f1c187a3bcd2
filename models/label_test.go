package models_test

import (
	"testing"

	"labelguard-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestLabelRecord_FieldStringifies(t *testing.T) {
	record := models.LabelRecord{
		models.FieldProductName: "  스파클링 레몬에이드  ",
		models.FieldNetContent:  500,
		"nil_field":             nil,
	}

	assert.Equal(t, "스파클링 레몬에이드", record.Field(models.FieldProductName))
	assert.Equal(t, "500", record.Field(models.FieldNetContent))
	assert.Equal(t, "", record.Field("nil_field"))
	assert.Equal(t, "", record.Field("absent"))
}

func TestLabelRecord_NormalizeMapsKoreanHeadings(t *testing.T) {
	record := models.LabelRecord{
		"제품명":       "울트라 에너지부스트",
		"유통기한":      "2026.12.31",
		"모르는항목":     "그대로",
		"food_type": "탄산음료",
	}

	normalized := record.Normalize()

	assert.Equal(t, "울트라 에너지부스트", normalized.Field(models.FieldProductName))
	assert.Equal(t, "2026.12.31", normalized.Field(models.FieldExpiryDate))
	assert.Equal(t, "탄산음료", normalized.Field(models.FieldFoodType))
	assert.Equal(t, "그대로", normalized.Field("모르는항목"))
}

func TestParseLabelText(t *testing.T) {
	raw := "제품명: 스파클링 레몬에이드\n" +
		"내용량： 500ml\n" +
		"콜론 없는 줄은 무시\n" +
		"용기재질: PET"

	record := models.ParseLabelText(raw)

	assert.Equal(t, "스파클링 레몬에이드", record.Field(models.FieldProductName))
	assert.Equal(t, "500ml", record.Field(models.FieldNetContent))
	assert.Equal(t, "PET", record.Field(models.FieldContainerMaterial))
	assert.Len(t, record, 3)
}

func TestReviewItemByID(t *testing.T) {
	domain, item, ok := models.ReviewItemByID("LBL-04")
	assert.True(t, ok)
	assert.Equal(t, models.DomainFoodLabeling, domain.Key)
	assert.Equal(t, "소비기한(유통기한)", item.Title)

	_, _, ok = models.ReviewItemByID("NOPE-99")
	assert.False(t, ok)
}
