package fallback

// PotionColor is used for every item whose name mentions a potion
const PotionColor = "hsl(330, 81%, 66%)"

// HashColorFormat renders a hashed hue with fixed saturation and lightness
const HashColorFormat = "hsl(%d, 65%%, 55%%)"

// DefaultEmoji is returned when no keyword matches
const DefaultEmoji = "\U0001F4E6"

// emojiRules are checked in order; the first rule with a matching keyword wins
var emojiRules = []struct {
	keywords []string
	emoji    string
}{
	// tools
	{[]string{"pickaxe"}, "\u26cf\ufe0f"},
	{[]string{"axe"}, "\U0001FA93"},
	{[]string{"shovel"}, "\U0001F5DD\ufe0f"},
	{[]string{"hoe"}, "\U0001F33E"},
	{[]string{"sword"}, "\u2694\ufe0f"},

	// armor
	{[]string{"helmet"}, "\U0001FA96"},
	{[]string{"chestplate"}, "\U0001F9BA"},
	{[]string{"leggings"}, "\U0001F456"},
	{[]string{"boots"}, "\U0001F462"},

	// food
	{[]string{"apple"}, "\U0001F34E"},
	{[]string{"bread"}, "\U0001F35E"},
	{[]string{"meat", "beef", "porkchop"}, "\U0001F356"},
	{[]string{"fish", "cod", "salmon"}, "\U0001F41F"},
	{[]string{"carrot"}, "\U0001F955"},
	{[]string{"potato"}, "\U0001F954"},

	// blocks
	{[]string{"stone", "cobblestone"}, "\U0001FAA8"},
	{[]string{"wood", "log", "planks"}, "\U0001FAB5"},
	{[]string{"glass"}, "\U0001F532"},
	{[]string{"dirt", "grass"}, "\U0001F7EB"},
	{[]string{"wool"}, "\U0001F9F6"},
	{[]string{"iron_bars"}, "\U0001F512"},

	// items
	{[]string{"diamond"}, "\U0001F48E"},
	{[]string{"emerald"}, "\U0001F49A"},
	{[]string{"gold"}, "\U0001F7E1"},
	{[]string{"iron"}, "\u2699\ufe0f"},
	{[]string{"book"}, "\U0001F4D6"},
	{[]string{"potion"}, "\U0001F9EA"},
	{[]string{"bow"}, "\U0001F3F9"},
	{[]string{"arrow"}, "\u27a1\ufe0f"},
	{[]string{"bed"}, "\U0001F6CF\ufe0f"},
	{[]string{"chest"}, "\U0001F4E6"},
	{[]string{"door"}, "\U0001F6AA"},
	{[]string{"torch"}, "\U0001F526"},
	{[]string{"bucket"}, "\U0001FAA3"},

	// nether update
	{[]string{"respawn_anchor"}, "\u2693"},
	{[]string{"lodestone"}, "\U0001F9F2"},
	{[]string{"campfire"}, "\U0001F525"},
	{[]string{"lantern"}, "\U0001F3EE"},
}
