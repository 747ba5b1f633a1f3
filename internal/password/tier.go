package password

// Tier is the discrete strength category of an assessment.
type Tier int

const (
	TierWaiting Tier = iota
	TierCritical
	TierWeak
	TierFair
	TierStrong
	TierElite
)

var tierNames = map[Tier]string{
	TierWaiting:  "WAITING",
	TierCritical: "CRITICAL",
	TierWeak:     "WEAK",
	TierFair:     "FAIR",
	TierStrong:   "STRONG",
	TierElite:    "ELITE",
}

var tierColors = map[Tier]string{
	TierCritical: "#ff4d4d",
	TierWeak:     "#ffa64d",
	TierFair:     "#ffff4d",
	TierStrong:   "#4dff4d",
	TierElite:    "#00ffff",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Color is the indicator colour for t. TierWaiting has none.
func (t Tier) Color() string {
	return tierColors[t]
}

// tierBounds lists the exclusive lower bounds in ascending order.
var tierBounds = []struct {
	above float64
	tier  Tier
}{
	{40, TierWeak},
	{60, TierFair},
	{80, TierStrong},
	{110, TierElite},
}

// Classify maps adjusted entropy bits to a tier. Each bound must be
// strictly exceeded; the highest exceeded bound wins.
func Classify(bits float64) Tier {
	tier := TierCritical
	for _, b := range tierBounds {
		if bits > b.above {
			tier = b.tier
		}
	}
	return tier
}
