package domain

import (
	"github.com/google/uuid"
)

// BusinessHour describes opening hours for one weekday.
// DayOfWeek follows time.Weekday (0 = Sunday). Times are "HH:MM" strings
// in the tenant's local time.
type BusinessHour struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	DayOfWeek int       `json:"day_of_week"`
	OpenTime  string    `json:"open_time"`
	CloseTime string    `json:"close_time"`
	IsClosed  bool      `json:"is_closed"`
}
