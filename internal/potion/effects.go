package potion

import "github.com/osse101/MinecraftItemIcon_Go/internal/domain"

// effects is the 1.16 potion table in brewing-guide order.
// long_ and strong_ forms share the texture of their base effect.
var effects = []domain.PotionEffect{
	{ID: "minecraft:water", Name: "Water", Texture: "water"},
	{ID: "minecraft:mundane", Name: "Mundane", Texture: "water"},
	{ID: "minecraft:thick", Name: "Thick", Texture: "water"},
	{ID: "minecraft:awkward", Name: "Awkward", Texture: "water"},

	{ID: "minecraft:night_vision", Name: "Night Vision", Texture: "night_vision", Level: 1, Duration: "3:00"},
	{ID: "minecraft:long_night_vision", Name: "Night Vision", Texture: "night_vision", Level: 1, Duration: "8:00"},

	{ID: "minecraft:invisibility", Name: "Invisibility", Texture: "invisibility", Level: 1, Duration: "3:00"},
	{ID: "minecraft:long_invisibility", Name: "Invisibility", Texture: "invisibility", Level: 1, Duration: "8:00"},

	{ID: "minecraft:leaping", Name: "Leaping", Texture: "leaping", Level: 1, Duration: "3:00"},
	{ID: "minecraft:long_leaping", Name: "Leaping", Texture: "leaping", Level: 1, Duration: "8:00"},
	{ID: "minecraft:strong_leaping", Name: "Leaping", Texture: "leaping", Level: 2, Duration: "1:30"},

	{ID: "minecraft:fire_resistance", Name: "Fire Resistance", Texture: "fire_resistance", Level: 1, Duration: "3:00"},
	{ID: "minecraft:long_fire_resistance", Name: "Fire Resistance", Texture: "fire_resistance", Level: 1, Duration: "8:00"},

	{ID: "minecraft:swiftness", Name: "Swiftness", Texture: "swiftness", Level: 1, Duration: "3:00"},
	{ID: "minecraft:long_swiftness", Name: "Swiftness", Texture: "swiftness", Level: 1, Duration: "8:00"},
	{ID: "minecraft:strong_swiftness", Name: "Swiftness", Texture: "swiftness", Level: 2, Duration: "1:30"},

	{ID: "minecraft:slowness", Name: "Slowness", Texture: "slowness", Level: 1, Duration: "1:30"},
	{ID: "minecraft:long_slowness", Name: "Slowness", Texture: "slowness", Level: 1, Duration: "4:00"},
	{ID: "minecraft:strong_slowness", Name: "Slowness", Texture: "slowness", Level: 4, Duration: "0:20"},

	{ID: "minecraft:turtle_master", Name: "Turtle Master", Texture: "turtle_master", Level: 1, Duration: "0:20"},
	{ID: "minecraft:long_turtle_master", Name: "Turtle Master", Texture: "turtle_master", Level: 1, Duration: "0:40"},
	{ID: "minecraft:strong_turtle_master", Name: "Turtle Master", Texture: "turtle_master", Level: 2, Duration: "0:20"},

	{ID: "minecraft:water_breathing", Name: "Water Breathing", Texture: "water_breathing", Level: 1, Duration: "3:00"},
	{ID: "minecraft:long_water_breathing", Name: "Water Breathing", Texture: "water_breathing", Level: 1, Duration: "8:00"},

	{ID: "minecraft:healing", Name: "Healing", Texture: "healing", Level: 1},
	{ID: "minecraft:strong_healing", Name: "Healing", Texture: "healing", Level: 2},

	{ID: "minecraft:harming", Name: "Harming", Texture: "harming", Level: 1},
	{ID: "minecraft:strong_harming", Name: "Harming", Texture: "harming", Level: 2},

	{ID: "minecraft:poison", Name: "Poison", Texture: "poison", Level: 1, Duration: "0:45"},
	{ID: "minecraft:long_poison", Name: "Poison", Texture: "poison", Level: 1, Duration: "1:30"},
	{ID: "minecraft:strong_poison", Name: "Poison", Texture: "poison", Level: 2, Duration: "0:22"},

	{ID: "minecraft:regeneration", Name: "Regeneration", Texture: "regeneration", Level: 1, Duration: "0:45"},
	{ID: "minecraft:long_regeneration", Name: "Regeneration", Texture: "regeneration", Level: 1, Duration: "1:30"},
	{ID: "minecraft:strong_regeneration", Name: "Regeneration", Texture: "regeneration", Level: 2, Duration: "0:22"},

	{ID: "minecraft:strength", Name: "Strength", Texture: "strength", Level: 1, Duration: "3:00"},
	{ID: "minecraft:long_strength", Name: "Strength", Texture: "strength", Level: 1, Duration: "8:00"},
	{ID: "minecraft:strong_strength", Name: "Strength", Texture: "strength", Level: 2, Duration: "1:30"},

	{ID: "minecraft:weakness", Name: "Weakness", Texture: "weakness", Level: 1, Duration: "1:30"},
	{ID: "minecraft:long_weakness", Name: "Weakness", Texture: "weakness", Level: 1, Duration: "4:00"},

	{ID: "minecraft:luck", Name: "Luck", Texture: "luck", Level: 1, Duration: "5:00"},

	{ID: "minecraft:slow_falling", Name: "Slow Falling", Texture: "slow_falling", Level: 1, Duration: "1:30"},
	{ID: "minecraft:long_slow_falling", Name: "Slow Falling", Texture: "slow_falling", Level: 1, Duration: "4:00"},

	// Uncraftable potions have no dedicated texture
	{ID: "minecraft:empty", Name: "Uncraftable"},
}

// effectIndex is built once from effects and only read afterwards
var effectIndex = buildIndex(effects)

func buildIndex(list []domain.PotionEffect) map[string]int {
	index := make(map[string]int, len(list))
	for i, e := range list {
		index[e.ID] = i
	}
	return index
}

// variantBearing are the base items whose texture depends on the potion effect
var variantBearing = map[string]bool{
	"minecraft:potion":           true,
	"minecraft:splash_potion":    true,
	"minecraft:lingering_potion": true,
}
