package repo

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/jeanhaley32/specstory-stats/internal/constants"
)

// HashIdentifier derives a project ID from a fallback string.
// Examples:
//   - "user/repo" -> first 16 hex chars of sha256("user/repo") as xxxx-xxxx-xxxx-xxxx
func HashIdentifier(input string) string {
	sum := sha256.Sum256([]byte(input))
	prefix := hex.EncodeToString(sum[:])[:constants.HashPrefixLength]

	groups := make([]string, 0, constants.HashPrefixLength/constants.HashGroupSize)
	for i := 0; i < len(prefix); i += constants.HashGroupSize {
		groups = append(groups, prefix[i:i+constants.HashGroupSize])
	}
	return strings.Join(groups, "-")
}
