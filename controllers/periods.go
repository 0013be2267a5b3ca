package controllers

import "time"

// Reporting windows. Days run midnight to midnight, weeks start on Sunday,
// months on the 1st, all in server local time.

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// monthAt returns the (year, month) of the calendar month `offset` months
// away from t. Negative offsets go back in time.
func monthAt(t time.Time, offset int) (int, int) {
	shifted := startOfMonth(t).AddDate(0, offset, 0)
	return shifted.Year(), int(shifted.Month())
}

// monthsAgo returns the first instant of the month n months before t.
func monthsAgo(t time.Time, n int) time.Time {
	return startOfMonth(t).AddDate(0, -n, 0)
}

// monthKey flattens (year, month) into a single map key, e.g. 202608.
func monthKey(year, month int) int {
	return year*100 + month
}
