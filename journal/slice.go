package journal

import (
	"fmt"

	"github.com/brejnholt/sliceq/internal/hash"
)

// SliceRange is a contiguous range of slices for one entity type. Ranges
// handed to concurrent cursors are expected to be disjoint and covering;
// that split is negotiated by the caller.
type SliceRange struct {
	EntityType string
	Min        int
	Max        int
}

func (r SliceRange) String() string {
	return fmt.Sprintf("%s[%d-%d]", r.EntityType, r.Min, r.Max)
}

// SliceFor returns the slice of a persistence id. It must match the hash
// used by the writer for the cursor partitioning to be meaningful.
func SliceFor(persistenceID string, numberOfSlices int) (int, error) {
	if numberOfSlices < 1 {
		return 0, fmt.Errorf("[sliceq] number of slices %d below 1: %w", numberOfSlices, ErrInvalidConfig)
	}

	return int(hash.FNV(persistenceID, uint32(numberOfSlices))), nil
}

// SliceRanges splits the slice space of an entity type into count ranges of
// equal width. count must evenly divide numberOfSlices.
func SliceRanges(entityType string, numberOfSlices, count int) ([]SliceRange, error) {
	if entityType == "" {
		return nil, fmt.Errorf("[sliceq] empty entity type: %w", ErrInvalidConfig)
	}
	if numberOfSlices <= 0 || count <= 0 {
		return nil, fmt.Errorf("[sliceq] non-positive slice count %d/%d: %w", numberOfSlices, count, ErrInvalidConfig)
	}
	if numberOfSlices%count != 0 {
		return nil, fmt.Errorf("[sliceq] %d ranges do not evenly divide %d slices: %w", count, numberOfSlices, ErrInvalidConfig)
	}

	width := numberOfSlices / count
	ranges := make([]SliceRange, count)
	for i := range count {
		ranges[i] = SliceRange{
			EntityType: entityType,
			Min:        i * width,
			Max:        (i+1)*width - 1,
		}
	}

	return ranges, nil
}
