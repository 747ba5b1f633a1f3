package password

import (
	"math"
	"strconv"
)

const (
	noIssuesMessage = "No obvious patterns detected. Good."
	emptyMessage    = "No patterns detected."

	// fairTextColor keeps the FAIR label readable on light backgrounds.
	fairTextColor      = "#000"
	slowCrackColor     = "#000"
	fastCrackColor     = "#d00"
	fastCrackBitsBound = 60
)

// Readout holds the display strings for an assessment.
type Readout struct {
	// MeterPercent is the meter fill, capped at 100 for display only.
	MeterPercent   float64
	MeterColor     string
	Status         string
	StatusColor    string
	Entropy        string
	Pool           string
	CrackTime      string
	CrackTimeColor string
	Issues         []string
	// Summary replaces Issues when none were triggered.
	Summary string
}

// Render formats a for display. Colours are left empty for the Empty state.
func Render(a Assessment) Readout {
	if a.State == StateEmpty {
		return Readout{
			MeterPercent: 0,
			Status:       "STATUS: " + TierWaiting.String(),
			Entropy:      "0 bits",
			Pool:         "0",
			CrackTime:    "Instant",
			Summary:      emptyMessage,
		}
	}

	color := a.Tier.Color()
	statusColor := color
	if a.Tier == TierFair {
		statusColor = fairTextColor
	}
	crackColor := slowCrackColor
	if a.Bits < fastCrackBitsBound {
		crackColor = fastCrackColor
	}

	r := Readout{
		MeterPercent:   math.Min(a.Bits, 100),
		MeterColor:     color,
		Status:         "STATUS: " + a.Tier.String(),
		StatusColor:    statusColor,
		Entropy:        strconv.FormatFloat(math.Floor(a.Bits), 'f', 0, 64) + " bits",
		Pool:           strconv.Itoa(a.Pool),
		CrackTime:      FormatCrackTime(a.CrackSeconds),
		CrackTimeColor: crackColor,
		Issues:         a.Issues(),
	}
	if len(r.Issues) == 0 {
		r.Summary = noIssuesMessage
	}
	return r
}
