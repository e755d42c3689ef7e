// Package ordering decides whether, and with what banner message, an order
// may currently be placed. The decision is a pure function of the current
// wall-clock minutes, the configured time-of-day boundaries and the admin
// override; it is recomputed fresh on every call.
package ordering

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Skyedown/pohoda-skalite/internal/domain"
)

type Status string

const (
	StatusBeforePreorder  Status = "before_preorder"
	StatusPreorder        Status = "preorder"
	StatusOpen            Status = "open"
	StatusOrdersClosed    Status = "orders_closed"
	StatusClosed          Status = "closed"
	StatusAdminDisabled   Status = "admin_disabled"
	StatusAdminWaitTime   Status = "admin_wait_time"
	StatusAdminCustomNote Status = "admin_custom_note"
)

type StatusInfo struct {
	Status   Status `json:"status"`
	CanOrder bool   `json:"can_order"`
	Message  string `json:"message"`
}

// Boundaries are the four ordering-window cut points in minutes since
// midnight, local to the restaurant's operating timezone. The caller resolves
// the timezone; this package never converts.
type Boundaries struct {
	PreorderStart int
	Opening       int
	LastOrder     int
	Closing       int
}

// Documented fallbacks for missing or unparsable boundary configuration.
const (
	DefaultPreorderStart = "10:00"
	DefaultOpening       = "11:00"
	DefaultLastOrder     = "21:30"
	DefaultClosing       = "22:00"
)

// ParseBoundaries converts four HH:MM strings to minute boundaries. Each
// field independently falls back to its documented default on a parse error;
// configuration problems never surface as runtime errors.
func ParseBoundaries(preorderStart, opening, lastOrder, closing string) Boundaries {
	return Boundaries{
		PreorderStart: parseTimeOrDefault(preorderStart, DefaultPreorderStart),
		Opening:       parseTimeOrDefault(opening, DefaultOpening),
		LastOrder:     parseTimeOrDefault(lastOrder, DefaultLastOrder),
		Closing:       parseTimeOrDefault(closing, DefaultClosing),
	}
}

func parseTimeOrDefault(timeStr, fallback string) int {
	if minutes, ok := parseTime(timeStr); ok {
		return minutes
	}
	minutes, _ := parseTime(fallback)
	return minutes
}

func parseTime(timeStr string) (int, bool) {
	parts := strings.SplitN(strings.TrimSpace(timeStr), ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

// FormatTime renders a minute boundary back as HH:MM for banner messages.
func FormatTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Evaluate combines the admin override and the time-of-day window. Admin
// modes other than "off" take priority over every time-based state. Time
// intervals are half-open [start, end): a time exactly on a boundary belongs
// to the later interval.
func Evaluate(nowMinutes int, b Boundaries, override domain.AdminOverride) StatusInfo {
	switch override.Mode {
	case domain.AdminModeDisabled:
		return StatusInfo{
			Status:   StatusAdminDisabled,
			CanOrder: false,
			Message:  "Objednávky sú dočasne pozastavené. Ďakujeme za pochopenie.",
		}
	case domain.AdminModeWaitTime:
		return StatusInfo{
			Status:   StatusAdminWaitTime,
			CanOrder: true,
			Message:  fmt.Sprintf("Aktuálna čakacia doba: %s", FormatWaitTime(override.WaitTimeMinutes)),
		}
	case domain.AdminModeCustomNote:
		return StatusInfo{
			Status:   StatusAdminCustomNote,
			CanOrder: true,
			Message:  override.CustomNote,
		}
	}

	return timeBasedStatus(nowMinutes, b)
}

func timeBasedStatus(nowMinutes int, b Boundaries) StatusInfo {
	if nowMinutes < b.PreorderStart {
		return StatusInfo{
			Status:   StatusBeforePreorder,
			CanOrder: false,
			Message:  fmt.Sprintf("Objednávky sú momentálne uzavreté. Predobjednávky budú možné od %s.", FormatTime(b.PreorderStart)),
		}
	}

	if nowMinutes < b.Opening {
		return StatusInfo{
			Status:   StatusPreorder,
			CanOrder: true,
			Message:  fmt.Sprintf("Aktuálne prijímame predobjednávky. Jedlo bude doručené po otvorení o %s.", FormatTime(b.Opening)),
		}
	}

	if nowMinutes < b.LastOrder {
		return StatusInfo{
			Status:   StatusOpen,
			CanOrder: true,
			Message:  "",
		}
	}

	if nowMinutes < b.Closing {
		return StatusInfo{
			Status:   StatusOrdersClosed,
			CanOrder: false,
			Message:  "Objednávky na dnes sú už uzavreté. Ďakujeme za pochopenie.",
		}
	}

	return StatusInfo{
		Status:   StatusClosed,
		CanOrder: false,
		Message:  fmt.Sprintf("Reštaurácia už momentálne nepríjma objednávky. Online predobjednávky sa otvárajú o %s.", FormatTime(b.PreorderStart)),
	}
}

// MinutesOfDay extracts minutes since midnight from a local time value.
func MinutesOfDay(hour, minute int) int {
	return hour*60 + minute
}
