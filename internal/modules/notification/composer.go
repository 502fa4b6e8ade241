package notification

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// OperatorEmail is the fixed address that receives a copy of every
// submission.
const OperatorEmail = "makeup10min@gmail.com"

const (
	customerSubject  = "[TEN:9] 🚨 예약이 접수되지 않습니다"
	operatorSubject  = "[TEN:9 프리토타입] 새로운 테스트 응답이 도착했습니다"
	customerFromName = "TEN:9 프리토타입"
	operatorFromName = "TEN:9 프리토타입 알림"
)

// Reservation is the composer's view of an accepted submission. TimeStart and
// TimeEnd are empty when the user skipped the time detail.
type Reservation struct {
	Name         string
	Email        string
	Gender       string
	Date         string
	Time         string
	Location     string
	Purpose      string
	Message      string
	Areas        []string
	TotalPrice   int
	TotalMinutes int
	TimeStart    string
	TimeEnd      string
}

// Email is one outgoing message with a plain-text body and an HTML
// alternative.
type Email struct {
	FromName string
	To       string
	Subject  string
	Text     string
	HTML     string
}

// Compose builds the customer-facing and operator-facing emails. It has no
// side effects; baseURL only feeds the logo link inside the HTML variant.
func Compose(r Reservation, baseURL string) (customer Email, operator Email) {
	data := buildEmailData(r, baseURL)
	summary := summaryText(data)

	customer = Email{
		FromName: customerFromName,
		To:       r.Email,
		Subject:  customerSubject,
		Text:     customerText(data.Name, summary),
		HTML:     render(customerTemplate, data),
	}
	operator = Email{
		FromName: operatorFromName,
		To:       OperatorEmail,
		Subject:  operatorSubject,
		Text:     summary,
		HTML:     render(operatorTemplate, data),
	}
	return customer, operator
}

type emailData struct {
	Name          string
	Email         string
	GenderLabel   string
	LocationLabel string
	PurposeLabel  string
	Date          string
	Time          string
	TimeRange     string
	TotalMinutes  int
	TotalPriceWon string
	AreasText     string
	Message       string
	LogoURL       string
	Year          int
}

func buildEmailData(r Reservation, baseURL string) emailData {
	timeRange := "미입력"
	if r.TimeStart != "" && r.TimeEnd != "" {
		timeRange = r.TimeStart + " ~ " + r.TimeEnd
	}

	message := r.Message
	if message == "" {
		message = "(없음)"
	}

	return emailData{
		Name:          r.Name,
		Email:         r.Email,
		GenderLabel:   label(genderLabels, r.Gender),
		LocationLabel: label(locationLabels, r.Location),
		PurposeLabel:  label(purposeLabels, r.Purpose),
		Date:          r.Date,
		Time:          r.Time,
		TimeRange:     timeRange,
		TotalMinutes:  r.TotalMinutes,
		TotalPriceWon: FormatWon(r.TotalPrice),
		AreasText:     AreasText(r.Areas),
		Message:       message,
		LogoURL:       strings.TrimRight(baseURL, "/") + "/logo.jpg",
		Year:          time.Now().Year(),
	}
}

func summaryText(d emailData) string {
	return fmt.Sprintf(`
[TEN:9 프리토타입 테스트 – 입력 내용 요약]

이름: %s
이메일: %s
성별: %s
희망 위치: %s
희망 날짜: %s
희망 시간: %s
예상 소요 시간: %s (약 %d분)
예상 결제 금액(가상): %s원
시술 옵션: %s
용도: %s
추가 내용:
%s
`, d.Name, d.Email, d.GenderLabel, d.LocationLabel, d.Date, d.Time,
		d.TimeRange, d.TotalMinutes, d.TotalPriceWon, d.AreasText, d.PurposeLabel, d.Message)
}

func customerText(name, summary string) string {
	return name + "님, 안녕하세요.\n\n" +
		"이 메일은 실제 미용 서비스 예약 안내가 아니라,\n" +
		"서울대학교 벤처경영학과 「창조와 혁신」 수업에서 진행 중인\n" +
		"TEN:9 퀵 메이크업 서비스 아이디어의 프리토타입(MVP) 테스트용 안내 메일입니다.\n\n" +
		"이번 프로젝트가 좋은 반응을 얻으면, 향후 실제 서비스로 정식 출시하는 것을 진지하게 검토할 예정입니다.\n" +
		"지금은 그 가능성을 확인하기 위한 일종의 수요조사 단계라고 봐주시면 됩니다. 🙌\n\n" +
		"따라서 아래 내용은 모두 '테스트용 입력 정보'이며,\n" +
		"실제 매장 예약, 시술, 결제, 방문 일정이 진행되지는 않습니다.\n\n" +
		"--- 프리토타입 페이지에서 남기신 내용 ---\n" +
		summary +
		"\n테스트에 참여해 주셔서 감사합니다.\n" +
		"서울대학교 벤처경영학과 TEN:9 팀 드림"
}

// FormatWon renders an amount with ko-KR thousands separators, e.g. 14800 →
// "14,800".
func FormatWon(amount int) string {
	s := strconv.Itoa(amount)
	if amount < 0 {
		s = s[1:]
	}

	var b strings.Builder
	if amount < 0 {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}
