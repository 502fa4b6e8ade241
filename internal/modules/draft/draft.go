package draft

// TimeRange is the client-computed start/end label pair for the session.
type TimeRange struct {
	StartLabel string `json:"startLabel"`
	EndLabel   string `json:"endLabel"`
}

// Draft is the not-yet-submitted reservation payload. Field names mirror the
// JSON body the reservation endpoint accepts.
type Draft struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Gender   string   `json:"gender"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Location string   `json:"location"`
	Areas    []string `json:"areas"`
	Purpose  string   `json:"purpose"`
	Message  string   `json:"message"`

	BasePrice    int  `json:"basePrice"`
	AddOnPrice   int  `json:"addOnPrice"`
	TotalPrice   int  `json:"totalPrice"`
	TotalMinutes int  `json:"totalMinutes"`
	AddEyes      bool `json:"addEyes"`
	AddShading   bool `json:"addShading"`

	TimeDetail *TimeRange `json:"timeDetail"`
}
