package library

import "testing"

func TestSorted(t *testing.T) {
	catalog := []Track{
		{ID: 1, Title: "Apple", DateAdded: 100},
		{ID: 2, Title: "banana", DateAdded: 50},
	}

	t.Run("title ascending is case-insensitive", func(t *testing.T) {
		got := Sorted(catalog, TitleAscending)
		if got[0].ID != 1 || got[1].ID != 2 {
			t.Errorf("expected [Apple banana], got [%s %s]", got[0].Title, got[1].Title)
		}
	})

	t.Run("title descending", func(t *testing.T) {
		got := Sorted(catalog, TitleDescending)
		if got[0].ID != 2 {
			t.Errorf("expected banana first, got %s", got[0].Title)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		got := Sorted(catalog, DateAddedDescending)
		if got[0].ID != 1 {
			t.Errorf("expected Apple (100) first, got %s", got[0].Title)
		}
	})

	t.Run("oldest first", func(t *testing.T) {
		got := Sorted(catalog, DateAddedAscending)
		if got[0].ID != 2 {
			t.Errorf("expected banana (50) first, got %s", got[0].Title)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		Sorted(catalog, TitleDescending)
		if catalog[0].ID != 1 {
			t.Error("input slice was reordered")
		}
	})

	t.Run("stable on equal keys", func(t *testing.T) {
		ties := []Track{
			{ID: 1, Title: "same", DateAdded: 7},
			{ID: 2, Title: "Same", DateAdded: 7},
			{ID: 3, Title: "SAME", DateAdded: 7},
		}

		for _, opt := range []SortOption{TitleAscending, TitleDescending, DateAddedDescending, DateAddedAscending} {
			got := Sorted(ties, opt)
			for i, want := range []int64{1, 2, 3} {
				if got[i].ID != want {
					t.Errorf("%s: tie order changed: got %v", opt, []int64{got[0].ID, got[1].ID, got[2].ID})
					break
				}
			}
		}
	})
}

func TestParseSortOption(t *testing.T) {
	cases := map[string]SortOption{
		"title-asc":  TitleAscending,
		"title-desc": TitleDescending,
		"newest":     DateAddedDescending,
		"oldest":     DateAddedAscending,
		"":           TitleAscending,
	}

	for in, want := range cases {
		got, err := ParseSortOption(in)
		if err != nil {
			t.Errorf("ParseSortOption(%q) error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseSortOption(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseSortOption("sideways"); err == nil {
		t.Error("expected error for unknown sort option")
	}
}

func TestFilterScopeCycle(t *testing.T) {
	scope := ScopeTitle
	want := []FilterScope{ScopeArtist, ScopeAlbum, ScopeAll, ScopeTitle}

	for _, w := range want {
		scope = scope.Next()
		if scope != w {
			t.Fatalf("cycle produced %v, want %v", scope, w)
		}
	}
}
