package issue

import (
	"reflect"
	"testing"
)

func TestExtractEntities(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        []string
	}{
		{"blog", "Blog with posts and comments", []string{"post", "comment"}},
		{"ecommerce", "E-commerce with products and orders", []string{"product", "order"}},
		{"user_management", "User management system", []string{"user"}},
		{"task_tracking", "Task tracking application", []string{"task"}},
		{"no_keywords_falls_back_to_item", "Something entirely unrelated", []string{"item"}},
		{"empty", "", []string{"item"}},
		{"synonym_maps_to_canonical", "Manage client reservations", []string{"customer", "booking"}},
		{"plural_keyword", "track categories and tags", []string{"category"}},
		{"y_singular_keyword", "inventory dashboard", []string{"inventory"}},
		{"whole_word_only", "discusses the userspace kernel", []string{"item"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEntities(tt.description)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractEntities(%q) = %v, want %v", tt.description, got, tt.want)
			}
		})
	}
}

// The entity list is capped at three, ordered by table precedence, and
// never contains duplicate canonical names.
func TestExtractEntitiesCapAndOrder(t *testing.T) {
	desc := "users post comments on products while tasks and events pile up"
	got := ExtractEntities(desc)

	if len(got) != 3 {
		t.Fatalf("entity count = %d, want 3 (got %v)", len(got), got)
	}
	// Table order: user, product, ..., post — not text order.
	want := []string{"user", "product", "post"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractEntities = %v, want %v", got, want)
	}

	seen := map[string]bool{}
	for _, e := range got {
		if seen[e] {
			t.Errorf("duplicate entity %q in %v", e, got)
		}
		seen[e] = true
	}
}

// A keyword shared by two rows ("transaction") records both canonical
// entities; deduplication applies to canonical names, not keywords.
func TestExtractEntitiesSharedKeyword(t *testing.T) {
	got := ExtractEntities("transaction ledger")
	want := []string{"order", "payment"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractEntities = %v, want %v", got, want)
	}
}

func TestExtractEntitiesRepeatedKeywordRecordedOnce(t *testing.T) {
	got := ExtractEntities("users and more users and accounts")
	want := []string{"user"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractEntities = %v, want %v", got, want)
	}
}
