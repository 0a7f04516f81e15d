package journal

import (
	"fmt"
	"strings"
)

// Delimiter separates the entity type from the entity id in a persistence
// id, following the writer convention "<entityType>|<entityId>".
const Delimiter = "|"

// ParsePersistenceID splits a persistence id into entity type and entity
// id. Ids without a delimiter are allowed; for those the entity type equals
// the full id. Malformed ids fail instead of silently resolving to a wrong
// slice.
func ParsePersistenceID(persistenceID string) (entityType, entityID string, err error) {
	if persistenceID == "" {
		return "", "", fmt.Errorf("[sliceq] empty persistence id: %w", ErrInvalidConfig)
	}

	entityType, entityID, found := strings.Cut(persistenceID, Delimiter)
	if !found {
		return persistenceID, persistenceID, nil
	}

	if entityType == "" {
		return "", "", fmt.Errorf("[sliceq] persistence id %q has an empty entity type: %w", persistenceID, ErrInvalidConfig)
	}
	if entityID == "" {
		return "", "", fmt.Errorf("[sliceq] persistence id %q has an empty entity id: %w", persistenceID, ErrInvalidConfig)
	}

	return entityType, entityID, nil
}
