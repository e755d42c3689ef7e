package ordering

import "fmt"

// FormatWaitTime renders a wait time in Slovak. Anything from 181 minutes up
// collapses to a fixed "3+ hodiny"; whole hours drop the minute part. Hour
// pluralization follows the Slovak rule: 1 hodina, 2-4 hodiny, 5+ hodín.
func FormatWaitTime(minutes int) string {
	if minutes >= 181 {
		return "3+ hodiny"
	}

	if minutes >= 60 {
		hours := minutes / 60
		mins := minutes % 60
		if mins == 0 {
			return fmt.Sprintf("%d %s", hours, hourWord(hours))
		}
		return fmt.Sprintf("%d %s %d minút", hours, hourWord(hours), mins)
	}

	return fmt.Sprintf("%d minút", minutes)
}

func hourWord(hours int) string {
	switch {
	case hours == 1:
		return "hodina"
	case hours < 5:
		return "hodiny"
	default:
		return "hodín"
	}
}

// WaitTimeOption is one admin-selectable wait time.
type WaitTimeOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// WaitTimeOptions lists the wait times the admin panel offers, in 15-minute
// steps up to three hours plus the open-ended bucket.
func WaitTimeOptions() []WaitTimeOption {
	values := []int{30, 45, 60, 75, 90, 105, 120, 135, 150, 165, 180, 181}
	options := make([]WaitTimeOption, 0, len(values))
	for _, v := range values {
		options = append(options, WaitTimeOption{Value: v, Label: FormatWaitTime(v)})
	}
	return options
}
