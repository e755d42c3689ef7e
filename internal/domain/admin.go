package domain

import "time"

type AdminMode string

const (
	AdminModeOff        AdminMode = "off"
	AdminModeDisabled   AdminMode = "disabled"
	AdminModeWaitTime   AdminMode = "waitTime"
	AdminModeCustomNote AdminMode = "customNote"
)

func (m AdminMode) Valid() bool {
	switch m {
	case AdminModeOff, AdminModeDisabled, AdminModeWaitTime, AdminModeCustomNote:
		return true
	}
	return false
}

// AdminOverride is the operator-controlled ordering override. It supersedes
// the time-of-day window whenever Mode != off.
type AdminOverride struct {
	Mode            AdminMode `json:"mode" bson:"mode"`
	WaitTimeMinutes int       `json:"waitTimeMinutes" bson:"wait_time_minutes"`
	CustomNote      string    `json:"customNote" bson:"custom_note"`
	UpdatedAt       time.Time `json:"updated_at,omitempty" bson:"updated_at"`
}

// DefaultAdminOverride is the fallback when the settings store is empty or
// unreachable: ordering follows the time-of-day window.
func DefaultAdminOverride() AdminOverride {
	return AdminOverride{
		Mode:            AdminModeOff,
		WaitTimeMinutes: 60,
	}
}
