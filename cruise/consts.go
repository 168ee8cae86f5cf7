package cruise

const (
	ReasonFallback         = "no valid samples; fallback to effective limit"
	ReasonMostRecentFormat = "most recent of %d samples, capped at effective limit"
	ReasonMedianFormat     = "median of %d samples, capped at effective limit"
)

const (
	MinHour     = 0
	MaxFromHour = 23
	// ToHour is exclusive, 24 closes a rule at midnight
	MaxToHour = 24

	MinDayOfWeek = 0 // Sunday
	MaxDayOfWeek = 6 // Saturday
)
