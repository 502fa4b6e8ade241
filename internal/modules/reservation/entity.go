package reservation

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// AreaList is the selected service areas, stored as one JSON-encoded text
// column.
type AreaList []string

func (a AreaList) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *AreaList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("reservation: cannot scan %T into AreaList", src)
	}
}

// Pricing carries the client-computed amounts, coerced to fallback defaults
// when the submission held no valid number.
type Pricing struct {
	BasePrice    int  `gorm:"column:base_price" json:"basePrice"`
	AddOnPrice   int  `gorm:"column:add_on_price" json:"addOnPrice"`
	TotalPrice   int  `gorm:"column:total_price" json:"totalPrice"`
	TotalMinutes int  `gorm:"column:total_minutes" json:"totalMinutes"`
	AddEyes      bool `gorm:"column:add_eyes" json:"addEyes"`
	AddShading   bool `gorm:"column:add_shading" json:"addShading"`
}

// Reservation is one accepted submission. Records are insert-only and never
// updated or deleted; duplicate submissions produce independent rows.
type Reservation struct {
	ID       int64    `gorm:"primaryKey" json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Gender   string   `json:"gender"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Location string   `json:"location"`
	Areas    AreaList `gorm:"type:text" json:"areas"`
	Purpose  string   `json:"purpose"`
	Message  string   `gorm:"type:text" json:"message"`

	Pricing Pricing `gorm:"embedded;embeddedPrefix:pricing_" json:"pricing"`

	// Start/end labels of the expected session, empty when the client sent
	// no time detail.
	TimeDetailStart string `gorm:"column:time_detail_start" json:"timeDetailStart,omitempty"`
	TimeDetailEnd   string `gorm:"column:time_detail_end" json:"timeDetailEnd,omitempty"`

	// Server-assigned at write time.
	CreatedAt time.Time `json:"createdAt"`
}

func (Reservation) TableName() string {
	return "reservations"
}
