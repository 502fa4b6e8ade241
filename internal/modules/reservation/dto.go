package reservation

// Fallback defaults applied when a numeric field is absent or not a JSON
// number. TotalPrice falls back to the coerced base price.
const (
	DefaultBasePrice    = 9900
	DefaultAddOnPrice   = 4900
	DefaultTotalMinutes = 10
)

// TimeDetail is the client-computed start/end label pair.
type TimeDetail struct {
	StartLabel string `json:"startLabel"`
	EndLabel   string `json:"endLabel"`
}

// CreateReservationRequest is the JSON body of POST /api/reservations. The
// numeric fields are deliberately untyped: anything that is not a JSON
// number, including absence, coerces to the documented default instead of
// rejecting the request.
type CreateReservationRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Gender   string   `json:"gender"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Location string   `json:"location"`
	Areas    []string `json:"areas"`
	Purpose  string   `json:"purpose"`
	Message  string   `json:"message"`

	BasePrice    any `json:"basePrice"`
	AddOnPrice   any `json:"addOnPrice"`
	TotalPrice   any `json:"totalPrice"`
	TotalMinutes any `json:"totalMinutes"`

	AddEyes    bool `json:"addEyes"`
	AddShading bool `json:"addShading"`

	TimeDetail *TimeDetail `json:"timeDetail"`
}

// numberOr coerces a decoded JSON value to an int amount. encoding/json
// represents every JSON number as float64, so anything else is "not a
// number" and takes the fallback.
func numberOr(v any, fallback int) int {
	if f, ok := v.(float64); ok {
		return int(f)
	}
	return fallback
}
