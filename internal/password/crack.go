package password

import (
	"math"
	"strconv"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	secondsPerYear   = 31536000
	yearsCeiling     = 31536000000
)

// FormatCrackTime renders seconds with the coarsest fitting unit. Bounds
// are inclusive below and exclusive above, so 59 is "59s" and 60 is "1m".
func FormatCrackTime(seconds float64) string {
	switch {
	case seconds < 1:
		return "Instant"
	case seconds < secondsPerMinute:
		return floorString(seconds) + "s"
	case seconds < secondsPerHour:
		return floorString(seconds/secondsPerMinute) + "m"
	case seconds < secondsPerDay:
		return floorString(seconds/secondsPerHour) + "h"
	case seconds < secondsPerYear:
		return floorString(seconds/secondsPerDay) + "d"
	case seconds < yearsCeiling:
		return floorString(seconds/secondsPerYear) + " years"
	default:
		return "Centuries"
	}
}

func floorString(v float64) string {
	return strconv.FormatFloat(math.Floor(v), 'f', 0, 64)
}
