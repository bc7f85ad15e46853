package catalog

import "testing"

func TestStoreReplacePublishesWholeSnapshot(t *testing.T) {
	store := NewStore(&Snapshot{
		Vacancies: &Vacancies{Items: []*Vacancy{{ID: "1"}}},
	})

	old := store.Snapshot()
	if old.Vacancies.Len() != 1 {
		t.Fatalf("expected initial snapshot with one vacancy")
	}
	if old.Courses == nil {
		t.Fatalf("nil courses must be normalized to an empty collection")
	}

	store.Replace(&Snapshot{
		Vacancies: &Vacancies{Items: []*Vacancy{{ID: "2"}, {ID: "3"}}},
		Courses:   &Courses{Items: []*Course{{ID: "c1"}}},
	})

	// the old snapshot is untouched; readers holding it see consistent data
	if old.Vacancies.Len() != 1 || old.Vacancies.Items[0].ID != "1" {
		t.Fatalf("old snapshot was mutated")
	}

	next := store.Snapshot()
	if next.Vacancies.Len() != 2 || next.Courses.Len() != 1 {
		t.Fatalf("new snapshot not published")
	}
}

func TestStoreReplaceNil(t *testing.T) {
	store := NewStore(nil)

	snapshot := store.Snapshot()
	if snapshot == nil || snapshot.Vacancies == nil || snapshot.Courses == nil {
		t.Fatalf("nil snapshot must be normalized to empty collections")
	}
}

func TestFindRoleCaseInsensitive(t *testing.T) {
	roles := DefaultRoles()

	role := FindRole(roles, "  frontend DEVELOPER ")
	if role == nil {
		t.Fatalf("expected to find the frontend role")
	}
	if role.Name != "Frontend Developer" {
		t.Fatalf("unexpected role: %q", role.Name)
	}

	if FindRole(roles, "astronaut") != nil {
		t.Fatalf("unexpected role match for astronaut")
	}
}
