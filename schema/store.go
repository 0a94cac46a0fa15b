package schema

import (
	"fmt"

	"github.com/skywave-atc/asterix/errs"
	"github.com/skywave-atc/asterix/internal/collision"
	"github.com/skywave-atc/asterix/internal/hash"
)

// Store is the Definition Store (spec.md §2, §3): an indexed collection of
// Category schemas, populated once at start-up and read-only afterward, so
// multiple decode workers may share one Store without synchronization
// (spec.md §5).
//
// Categories are indexed by an xxhash digest of their id for O(1) lookup;
// collision.Tracker guards against two categories hashing to the same
// bucket (astronomically unlikely for a [0,255] keyspace, but the
// invariant is enforced rather than assumed).
type Store struct {
	categories map[uint64]*Category
	tracker    *collision.Tracker
}

// NewStore creates an empty Definition Store.
func NewStore() *Store {
	return &Store{
		categories: make(map[uint64]*Category),
		tracker:    collision.NewTracker(),
	}
}

func categoryKey(id int) string {
	return fmt.Sprintf("cat:%d", id)
}

// addCategory registers a new Category by id, per the schema loader
// interface's add_category(id) (spec.md §6); exported as AddCategory in
// loader.go.
func (s *Store) addCategory(id int) (*Category, error) {
	key := categoryKey(id)
	h := hash.ID(key)

	if err := s.tracker.Track(key, h); err != nil {
		return nil, err
	}

	cat := newCategory(id)
	s.categories[h] = cat

	return cat, nil
}

// Category looks up a Category by id. Returns errs.ErrUnknownCategory if
// no definition has been loaded for it (spec.md §7).
func (s *Store) Category(id int) (*Category, error) {
	cat, ok := s.categories[hash.ID(categoryKey(id))]
	if !ok {
		return nil, errs.ErrUnknownCategory
	}

	return cat, nil
}
