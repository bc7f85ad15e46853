package catalog

import "sync/atomic"

// Snapshot bundles the read-only catalogs the engine works over. A
// snapshot is never mutated after construction.
type Snapshot struct {
	Vacancies *Vacancies
	Courses   *Courses
}

// Store publishes the current catalog snapshot. Reloads swap the whole
// snapshot atomically, so in-flight matching calls keep working over the
// snapshot they started with and never observe a partial catalog.
type Store struct {
	current atomic.Pointer[Snapshot]
}

func NewStore(snapshot *Snapshot) *Store {
	store := &Store{}
	store.Replace(snapshot)
	return store
}

// Snapshot returns the currently published snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Replace atomically publishes a new snapshot. Nil fields are normalized
// to empty collections so readers never need nil checks.
func (s *Store) Replace(snapshot *Snapshot) {
	if snapshot == nil {
		snapshot = &Snapshot{}
	}
	if snapshot.Vacancies == nil {
		snapshot.Vacancies = &Vacancies{}
	}
	if snapshot.Courses == nil {
		snapshot.Courses = &Courses{}
	}
	s.current.Store(snapshot)
}
