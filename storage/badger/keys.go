package badger

import (
	"fmt"
	"strings"

	"github.com/mGaurav-dev/SIH-25/core"
)

// Key prefix for knowledge documents.
const documentPrefix = "agdoc"

// makeDocumentKey generates a key for a knowledge document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// parseDocumentKey extracts the document ID from a key.
func parseDocumentKey(key []byte) (core.ID, error) {
	s := string(key)
	rest, ok := strings.CutPrefix(s, documentPrefix+":")
	if !ok {
		return 0, fmt.Errorf("not a document key: %q", s)
	}
	var id uint64
	if _, err := fmt.Sscanf(rest, "%d", &id); err != nil {
		return 0, fmt.Errorf("malformed document key %q: %w", s, err)
	}
	return core.ID(id), nil
}
