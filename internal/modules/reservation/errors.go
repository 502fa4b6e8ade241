package reservation

import "errors"

var (
	// ErrValidation means a required field was missing; nothing was
	// persisted and no mail was sent.
	ErrValidation = errors.New("missing required field")

	// ErrMailConfig means the relay credentials are absent. The record is
	// already persisted when this is returned.
	ErrMailConfig = errors.New("email credentials not configured")
)

// User-facing messages, returned verbatim in the response body.
const (
	MsgMissingFields = "필수 항목이 누락되었습니다."
	MsgMailConfig    = "이메일 설정이 올바르지 않습니다."
	MsgInternal      = "예약 처리 중 오류가 발생했습니다."
)
