package form

import "errors"

var ErrConsentRequired = errors.New("terms and privacy consent is required")
