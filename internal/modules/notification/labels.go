package notification

import "strings"

// Display-text tables for coded form values. Unknown codes pass through
// verbatim instead of failing.
var (
	genderLabels = map[string]string{
		"female": "여성",
		"male":   "남성",
	}

	purposeLabels = map[string]string{
		"introdate": "소개팅",
		"meeting":   "중요한 업무미팅 / 발표",
		"daily":     "데일리 일정",
		"other":     "기타",
	}

	locationLabels = map[string]string{
		"gangnam-11": "강남",
		"sinchon-1":  "신촌",
		"konkuk-1":   "건대입구",
	}

	areaLabels = map[string]string{
		"compact": "컴팩트 메이크업 (피부, 눈썹, 입술) — 기본",
		"eyes":    "눈 메이크업 추가",
		"shading": "코 / 쉐딩 추가",
	}
)

const defaultAreasText = "컴팩트 메이크업 (기본)"

func label(table map[string]string, code string) string {
	if text, ok := table[code]; ok {
		return text
	}
	return code
}

// AreasText joins the mapped area labels with ", ". An empty selection still
// names the base service.
func AreasText(areas []string) string {
	if len(areas) == 0 {
		return defaultAreasText
	}
	labels := make([]string, 0, len(areas))
	for _, a := range areas {
		labels = append(labels, label(areaLabels, a))
	}
	return strings.Join(labels, ", ")
}
