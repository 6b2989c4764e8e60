package domain

// PotionEffect describes one brewable potion type
type PotionEffect struct {
	ID       string `json:"id"`                 // "minecraft:strong_swiftness"
	Name     string `json:"name"`               // "Swiftness"
	Texture  string `json:"texture,omitempty"`  // texture variant token, empty when none exists
	Level    int    `json:"level,omitempty"`    // amplifier shown as a roman numeral when > 1
	Duration string `json:"duration,omitempty"` // "1:30", empty for instant effects
}
