package domain

import "strings"

// SplitIdentifier splits "namespace:path" on the first namespace separator.
// ok is false when the identifier has no separator; path is then the whole input.
func SplitIdentifier(id string) (namespace, path string, ok bool) {
	namespace, path, ok = strings.Cut(id, NamespaceSeparator)
	if !ok {
		return "", id, false
	}
	return namespace, path, true
}

// StripNamespace returns the identifier without its "namespace:" prefix
func StripNamespace(id string) string {
	_, path, _ := SplitIdentifier(id)
	return path
}

// JoinIdentifier builds "namespace:path"
func JoinIdentifier(namespace, path string) string {
	return namespace + NamespaceSeparator + path
}
