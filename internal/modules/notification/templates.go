package notification

import (
	"html/template"
	"log"
	"strings"
)

func render(t *template.Template, data emailData) string {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		log.Printf("notification: template %s failed: %v", t.Name(), err)
		return ""
	}
	return b.String()
}

var customerTemplate = template.Must(template.New("customer").Parse(`<!DOCTYPE html>
<html lang="ko">
  <head>
    <meta charSet="utf-8" />
    <title>[TEN:9] 🚨 예약이 접수되지 않습니다 (프리토타입 안내)</title>
  </head>
  <body style="margin:0;padding:0;background-color:#050509;font-family:system-ui,-apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif;color:#f4f4f5;">
    <table width="100%" cellspacing="0" cellpadding="0" style="background:#050509;padding:24px 0;">
      <tr>
        <td align="center">
          <table width="100%" cellpadding="0" cellspacing="0" style="max-width:560px;background:#18181b;border-radius:16px;padding:24px;border:1px solid #27272a;">
            <tr>
              <td align="left" style="padding-bottom:16px;border-bottom:1px solid #27272a;">
                <table width="100%" cellpadding="0" cellspacing="0">
                  <tr>
                    <td style="width:56px;vertical-align:top;">
                      <div style="width:48px;height:48px;border-radius:14px;overflow:hidden;border:1px solid rgba(244,114,182,0.5);background:#020617;">
                        <img src="{{.LogoURL}}" alt="TEN:9 로고" style="display:block;width:100%;height:100%;object-fit:cover;" />
                      </div>
                    </td>
                    <td style="padding-left:12px;vertical-align:middle;">
                      <div style="font-size:11px;letter-spacing:0.18em;text-transform:uppercase;color:#f9a8d4;font-weight:600;">TEN:9</div>
                      <div style="font-size:12px;color:#a1a1aa;margin-top:2px;">10분이면 완성되는 퀵 메이크업 (프리토타입)</div>
                    </td>
                  </tr>
                </table>
              </td>
            </tr>

            <tr>
              <td style="padding-top:16px;padding-bottom:10px;">
                <div style="border-radius:12px;background:#450a0a;padding:10px 12px;border:1px solid #f87171;color:#fee2e2;font-size:12px;line-height:1.6;">
                  <strong style="font-size:13px;">🚨 중요한 안내</strong><br />
                  이 메일은 <strong>실제 미용 서비스 예약이 아니라</strong>,
                  <strong>테스트용 프리토타입 페이지</strong>에서 남겨주신 정보를
                  정리해서 보내드리는 안내 메일입니다.
                  <br />
                  입력하신 내용은 <strong>실제 매장 예약, 시술, 결제, 방문 일정</strong>으로
                  이어지지 않습니다.
                </div>
              </td>
            </tr>

            <tr>
              <td style="padding-top:6px;padding-bottom:8px;">
                <div style="font-size:14px;font-weight:600;color:#f4f4f5;margin-bottom:4px;">
                  {{.Name}}님, TEN:9 프리토타입 테스트에 참여해 주셔서 감사합니다.
                </div>
                <div style="font-size:12px;color:#a1a1aa;line-height:1.7;">
                  현재 이 서비스는 <strong>서울대학교 벤처경영학과 「창조와 혁신」 수업</strong>에서
                  진행 중인 <strong>서비스 아이디어 검증용 프리토타입(MVP)</strong>입니다.
                  <br />
                  남겨주신 정보는 <strong>수업 내 연구·기획 참고용</strong>으로만 활용되며,
                  실제 예약 확정이나 일정 배정, 결제에 사용되지 않습니다.
                </div>
              </td>
            </tr>

            <tr>
              <td style="padding-top:8px;padding-bottom:8px;">
                <div style="font-size:13px;font-weight:600;color:#e5e5e5;margin-bottom:6px;">테스트 페이지에서 입력하신 내용</div>
                <table width="100%" cellpadding="0" cellspacing="0" style="font-size:12px;color:#d4d4d8;background:#09090b;border-radius:12px;padding:10px 12px;border:1px solid #27272a;">
                  <tr>
                    <td width="80" style="color:#a1a1aa;padding:4px 0;">이름</td>
                    <td style="padding:4px 0;">{{.Name}}</td>
                  </tr>
                  <tr>
                    <td width="80" style="color:#a1a1aa;padding:4px 0;">이메일</td>
                    <td style="padding:4px 0;">{{.Email}}</td>
                  </tr>
                  <tr>
                    <td width="80" style="color:#a1a1aa;padding:4px 0;">성별</td>
                    <td style="padding:4px 0;">{{.GenderLabel}}</td>
                  </tr>
                  <tr>
                    <td width="80" style="color:#a1a1aa;padding:4px 0;">희망 위치</td>
                    <td style="padding:4px 0;">{{.LocationLabel}}</td>
                  </tr>
                  <tr>
                    <td width="80" style="color:#a1a1aa;padding:4px 0;">희망 일정</td>
                    <td style="padding:4px 0;">{{.Date}} · {{.Time}}</td>
                  </tr>
                  <tr>
                    <td width="80" style="color:#a1a1aa;padding:4px 0;">예상 시간(가상)</td>
                    <td style="padding:4px 0;">{{.TimeRange}} (약 {{.TotalMinutes}}분)</td>
                  </tr>
                  <tr>
                    <td width="80" style="color:#a1a1aa;padding:4px 0;">예상 금액(가상)</td>
                    <td style="padding:4px 0;">{{.TotalPriceWon}}원</td>
                  </tr>
                  <tr>
                    <td width="80" style="color:#a1a1aa;padding:4px 0;">시술 옵션</td>
                    <td style="padding:4px 0;">{{.AreasText}}</td>
                  </tr>
                  <tr>
                    <td width="80" style="color:#a1a1aa;padding:4px 0;">용도</td>
                    <td style="padding:4px 0;">{{.PurposeLabel}}</td>
                  </tr>
                  <tr>
                    <td width="80" style="color:#a1a1aa;padding:4px 0;vertical-align:top;">추가 내용</td>
                    <td style="padding:4px 0;white-space:pre-line;">{{.Message}}</td>
                  </tr>
                </table>
              </td>
            </tr>

            <tr>
              <td style="padding-top:10px;">
                <div style="font-size:11px;color:#71717a;line-height:1.7;">
                  이 메일은 <strong>서울대학교 벤처경영학과 「창조와 혁신」 수업</strong>에서
                  진행 중인 <strong>TEN:9 퀵 메이크업 프리토타입(MVP) 테스트</strong>의
                  일환으로 자동 발송되었습니다.
                  <br />
                  실제 예약 진행을 원하실 경우에는, 향후 정식 서비스 오픈 안내를
                  별도로 드릴 예정입니다.
                </div>
              </td>
            </tr>
          </table>

          <div style="margin-top:12px;font-size:10px;color:#52525b;">
            © {{.Year}} TEN:9 — Quick Makeup Prototype (SNU Venture Management · 창조와 혁신)
          </div>
        </td>
      </tr>
    </table>
  </body>
</html>`))

var operatorTemplate = template.Must(template.New("operator").Parse(`<!DOCTYPE html>
<html lang="ko">
  <head><meta charSet="utf-8" /></head>
  <body style="font-family:system-ui,-apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif;font-size:13px;color:#111827;">
    <h2 style="margin-bottom:4px;">[TEN:9 프리토타입] 새로운 테스트 응답</h2>
    <p style="margin-top:0;color:#6b7280;font-size:12px;">
      서울대학교 벤처경영학과 「창조와 혁신」 수업 내
      TEN:9 퀵 메이크업 프리토타입(MVP) 페이지에서 신규 응답이 접수되었습니다.
    </p>
    <table cellpadding="4" cellspacing="0" style="border-collapse:collapse;font-size:13px;">
      <tr><td style="color:#6b7280;">이름</td><td>{{.Name}}</td></tr>
      <tr><td style="color:#6b7280;">이메일</td><td>{{.Email}}</td></tr>
      <tr><td style="color:#6b7280;">성별</td><td>{{.GenderLabel}}</td></tr>
      <tr><td style="color:#6b7280;">희망 위치</td><td>{{.LocationLabel}}</td></tr>
      <tr><td style="color:#6b7280;">희망 일정</td><td>{{.Date}} · {{.Time}}</td></tr>
      <tr><td style="color:#6b7280;">예상 시간(가상)</td><td>{{.TimeRange}} (약 {{.TotalMinutes}}분)</td></tr>
      <tr><td style="color:#6b7280;">예상 금액(가상)</td><td>{{.TotalPriceWon}}원</td></tr>
      <tr><td style="color:#6b7280;">시술 옵션</td><td>{{.AreasText}}</td></tr>
      <tr><td style="color:#6b7280;">용도</td><td>{{.PurposeLabel}}</td></tr>
      <tr><td style="color:#6b7280;vertical-align:top;">추가 내용</td><td style="white-space:pre-line;">{{.Message}}</td></tr>
    </table>
    <p style="margin-top:16px;font-size:11px;color:#9ca3af;">
      이 메일은 TEN:9 퀵 메이크업 프리토타입(MVP) 웹 페이지에서 자동 발송되었습니다.
    </p>
  </body>
</html>`))
