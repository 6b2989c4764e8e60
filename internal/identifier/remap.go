package identifier

// Remap applies the fixed special-case substitutions. Unknown ids pass through.
func Remap(baseID string) string {
	if target, ok := remapTable[baseID]; ok {
		return target
	}
	return baseID
}
