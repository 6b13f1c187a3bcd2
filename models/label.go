package models

import (
	"fmt"
	"strings"
)

// Recognized label field keys. Unknown keys in a record are accepted but
// ignored by the rule engine.
const (
	FieldProductName       = "product_name"
	FieldFoodType          = "food_type"
	FieldBusinessName      = "business_name"
	FieldAddress           = "address"
	FieldExpiryDate        = "expiry_date"
	FieldNetContent        = "net_content"
	FieldIngredients       = "ingredients"
	FieldNutrition         = "nutrition"
	FieldAllergens         = "allergens"
	FieldStorageMethod     = "storage_method"
	FieldCaution           = "caution"
	FieldCaffeineContent   = "caffeine_content"
	FieldJuiceContent      = "juice_content"
	FieldOriginPrimary     = "origin_primary"
	FieldOriginSecondary   = "origin_secondary"
	FieldContainerMaterial = "container_material"
	FieldLeachTest         = "leach_test"
	FieldRecyclingMark     = "recycling_mark"
)

// LabelRecord maps field keys to the values printed on a product label.
// Values may arrive as any JSON type; Field stringifies them. Records are
// built per evaluation request and never persisted.
type LabelRecord map[string]interface{}

// Field returns the trimmed string form of a field value. A missing field
// behaves identically to an empty string.
func (r LabelRecord) Field(name string) string {
	v, ok := r[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// FieldAliases maps the Korean headings used on label sheets and the CSV
// template to recognized field keys.
var FieldAliases = map[string]string{
	"제품명":       FieldProductName,
	"식품유형":      FieldFoodType,
	"업소명":       FieldBusinessName,
	"소재지":       FieldAddress,
	"소비기한":      FieldExpiryDate,
	"유통기한":      FieldExpiryDate,
	"내용량":       FieldNetContent,
	"원재료명":      FieldIngredients,
	"영양성분":      FieldNutrition,
	"알레르기":      FieldAllergens,
	"보관방법":      FieldStorageMethod,
	"주의사항":      FieldCaution,
	"카페인함량":     FieldCaffeineContent,
	"과즙함량":      FieldJuiceContent,
	"원산지(주원료1)": FieldOriginPrimary,
	"원산지(주원료2)": FieldOriginSecondary,
	"용기재질":      FieldContainerMaterial,
	"용기용출시험":    FieldLeachTest,
	"재활용표시":     FieldRecyclingMark,
}

// Normalize returns a copy of the record with Korean alias headings mapped
// to field keys. Keys that are neither recognized fields nor aliases are
// carried over unchanged.
func (r LabelRecord) Normalize() LabelRecord {
	out := make(LabelRecord, len(r))
	for k, v := range r {
		key := strings.TrimSpace(k)
		if mapped, ok := FieldAliases[key]; ok {
			key = mapped
		}
		out[key] = v
	}
	return out
}

// ParseLabelText parses free-form pasted label text of the form
// "항목: 값" (one field per line, full-width colon accepted) into a
// normalized record.
func ParseLabelText(raw string) LabelRecord {
	record := make(LabelRecord)
	for _, line := range strings.Split(raw, "\n") {
		var name, value string
		switch {
		case strings.Contains(line, ":"):
			parts := strings.SplitN(line, ":", 2)
			name, value = parts[0], parts[1]
		case strings.Contains(line, "："):
			parts := strings.SplitN(line, "：", 2)
			name, value = parts[0], parts[1]
		default:
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		record[name] = strings.TrimSpace(value)
	}
	return record.Normalize()
}
