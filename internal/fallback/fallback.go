// Package fallback derives placeholder visuals (a color and an emoji) for
// items whose texture fails to load.
package fallback

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/osse101/MinecraftItemIcon_Go/internal/domain"
)

const potionKeyword = "potion"

// Visual is the placeholder shown in place of a missing texture
type Visual struct {
	Color string `json:"color"`
	Emoji string `json:"emoji"`
}

// For returns both fallback values for id
func For(id string) Visual {
	return Visual{Color: Color(id), Emoji: Emoji(id)}
}

// Color returns a stable HSL color for id. Potions share one pink color,
// everything else gets a hue hashed from the name.
func Color(id string) string {
	name := trimDefaultNamespace(id)
	if strings.Contains(name, potionKeyword) {
		return PotionColor
	}

	hue := hashName(name) % 360
	if hue < 0 {
		hue = -hue
	}
	return fmt.Sprintf(HashColorFormat, hue)
}

// hashName is the 31-multiplier string hash over UTF-16 code units.
// The shifted term wraps at 32 bits while the running sum does not, which
// keeps colors identical to the web client.
func hashName(name string) int64 {
	var h int64
	for _, unit := range utf16.Encode([]rune(name)) {
		h = int64(unit) + (int64(int32(h)<<5) - h)
	}
	return h
}

// Emoji returns an emoji matching the item's name by keyword
func Emoji(id string) string {
	name := trimDefaultNamespace(id)
	for _, rule := range emojiRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(name, keyword) {
				return rule.emoji
			}
		}
	}
	return DefaultEmoji
}

func trimDefaultNamespace(id string) string {
	return strings.TrimPrefix(id, domain.DefaultNamespace+domain.NamespaceSeparator)
}
