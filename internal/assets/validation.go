package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects names that could escape the asset directories.
// Asset names are bare identifiers: no path separators, no traversal, no
// null bytes.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
