package estadia

import "time"

// Nights returns the number of billable nights between entry and exit.
// A same-day or inverted range still bills exactly one night.
func Nights(entry, exit time.Time) int {
	entry = truncateToDay(entry)
	exit = truncateToDay(exit)

	nights := int(exit.Sub(entry).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// ComputeTotal derives the total cost of a stay. It returns nil while the
// exit date is unknown; the linked payment keeps a nil amount until then.
func ComputeTotal(entry time.Time, exit *time.Time, dailyRate float64) *float64 {
	if exit == nil {
		return nil
	}

	total := float64(Nights(entry, *exit)) * dailyRate
	return &total
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
