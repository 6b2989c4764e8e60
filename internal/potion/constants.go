package potion

// Display formats
const (
	// LevelNameFormat renders "<name> <numeral>" for amplified effects
	LevelNameFormat = "%s %s"

	// DurationFormat renders "<name> (<m:ss>)"
	DurationFormat = "%s (%s)"
)

var romanNumerals = []string{"", "I", "II", "III", "IV", "V"}
