package domain

// Identifier syntax
const (
	// NamespaceSeparator separates the namespace from the path ("minecraft:stone")
	NamespaceSeparator = ":"

	// VariantSeparator separates a whitelisted base path from its embedded variant
	// ("minecraft:potion.swiftness")
	VariantSeparator = "."

	// FileNameSeparator replaces the namespace separator in texture file names
	// and joins a texture variant onto its base ("minecraft_potion_swiftness")
	FileNameSeparator = "_"

	// DefaultNamespace is the namespace of every vanilla identifier
	DefaultNamespace = "minecraft"
)

// DefaultStackSize is used for catalogue entries that do not declare one
const DefaultStackSize = 64

// UnknownItemName is the display name of last resort for blank identifiers
const UnknownItemName = "Unknown Item"
