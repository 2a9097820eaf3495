package srs

import (
	"math"
	"strconv"
	"time"
)

const (
	minutesPerMonth = 30 * MinutesPerDay
	minutesPerYear  = 365 * MinutesPerDay
)

// FormatInterval renders a minute count as a short label: 45m, 3h, 12d, 4mo,
// 1.5y. Each unit is rounded half away from zero.
func FormatInterval(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	switch {
	case minutes < MinutesPerHour:
		return strconv.Itoa(minutes) + "m"
	case minutes < MinutesPerDay:
		return roundedUnit(minutes, MinutesPerHour) + "h"
	case minutes < minutesPerMonth:
		return roundedUnit(minutes, MinutesPerDay) + "d"
	case minutes < minutesPerYear:
		return roundedUnit(minutes, minutesPerMonth) + "mo"
	}
	years := math.Round(float64(minutes)/minutesPerYear*10) / 10
	return strconv.FormatFloat(years, 'f', 1, 64) + "y"
}

func roundedUnit(minutes, per int) string {
	return strconv.Itoa(int(math.Round(float64(minutes) / float64(per))))
}

// FormatUntilDue renders the time left before dueAt, or "Now" once it is due.
func FormatUntilDue(dueAt, now time.Time) string {
	d := dueAt.Sub(now)
	if d <= 0 {
		return "Now"
	}
	mins := int(math.Round(d.Minutes()))
	if mins < MinutesPerHour {
		return strconv.Itoa(mins) + "m"
	}
	hours := int(math.Round(float64(mins) / MinutesPerHour))
	if hours < 24 {
		return strconv.Itoa(hours) + "h"
	}
	return strconv.Itoa(int(math.Round(float64(hours)/24))) + "d"
}
