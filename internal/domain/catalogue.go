package domain

// Category groups catalogue entries the way the creative inventory tabs do
type Category string

const (
	CategoryAll            Category = "all"
	CategoryBuildingBlocks Category = "building_blocks"
	CategoryDecorations    Category = "decorations"
	CategoryRedstone       Category = "redstone"
	CategoryTransportation Category = "transportation"
	CategoryMiscellaneous  Category = "miscellaneous"
	CategoryFoodstuffs     Category = "foodstuffs"
	CategoryTools          Category = "tools"
	CategoryCombat         Category = "combat"
	CategoryBrewing        Category = "brewing"
)

// Categories lists every category in creative inventory order
var Categories = []Category{
	CategoryAll,
	CategoryBuildingBlocks,
	CategoryDecorations,
	CategoryRedstone,
	CategoryTransportation,
	CategoryMiscellaneous,
	CategoryFoodstuffs,
	CategoryTools,
	CategoryCombat,
	CategoryBrewing,
}

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryDefinition pairs a category with its display name
type CategoryDefinition struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
}

// CatalogueEntry is a single read-only catalogue item.
// Variant is only set on entries expanded from a variant-bearing base item
// (e.g. "minecraft:potion.swiftness" carries "minecraft:swiftness").
type CatalogueEntry struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	StackSize int      `json:"stack_size"`
	Craftable bool     `json:"craftable"`
	Variant   string   `json:"variant,omitempty"`
}
