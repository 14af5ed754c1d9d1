package rules

import (
	"fmt"
	"github.com/OneOfOne/xxhash"
)

// Digest identifies the content of a document, so results can be traced back to the exact rules that produced them.
// Documents with the same rules have the same digest, whether they were written in JSON or YAML.
func (d *Document) Digest() (string, error) {
	h := xxhash.New64()
	if err := jsonAPI.NewEncoder(h).Encode(d); err != nil {
		return "", fmt.Errorf("failed to digest rules: %w", err)
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
