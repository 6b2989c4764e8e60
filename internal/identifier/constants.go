package identifier

// VariantBasePaths are the item paths that may carry an embedded variant
// ("minecraft:potion.swiftness"). Parse checks them in this order and stops at
// the first match. Matching requires the full base path followed by the variant
// separator, so no two entries can match the same input.
var VariantBasePaths = []string{
	"potion",
	"splash_potion",
	"lingering_potion",
}

// remapTable holds fixed identifier substitutions applied before texture lookup.
// Generic items without a texture of their own point at one concrete variant.
var remapTable = map[string]string{
	"minecraft:shulker_box": "minecraft:purple_shulker_box",
}
