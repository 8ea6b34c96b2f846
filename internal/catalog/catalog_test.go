package catalog

import (
	"testing"

	"github.com/noren-next/internal/models"
)

func TestNewCatalogIsValid(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("build catalog failed: %v", err)
	}
	if c.Size() == 0 {
		t.Fatalf("expected non-empty catalog")
	}
	if problems := Lint(); len(problems) != 0 {
		t.Fatalf("expected no menu problems, got %v", problems)
	}
}

func TestItemIDsAreDistinctAndParseable(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("build catalog failed: %v", err)
	}
	seen := make(map[string]bool)
	for _, category := range c.Categories() {
		for _, item := range category.Items {
			if seen[item.ID] {
				t.Fatalf("duplicate item id %s", item.ID)
			}
			seen[item.ID] = true
			if _, ok := models.ParseMoney(item.Price); !ok {
				t.Fatalf("item %s has unparseable price %q", item.ID, item.Price)
			}
		}
	}
}

func TestItemByID(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("build catalog failed: %v", err)
	}

	item, ok := c.ItemByID("sushi-1")
	if !ok {
		t.Fatalf("expected sushi-1 to exist")
	}
	if item.Name != "Nigiri Sushi Set" || item.Price != "$28.00" || item.Category != "sushi" {
		t.Fatalf("unexpected payload: %+v", item)
	}

	if _, ok := c.ItemByID("sushi-999"); ok {
		t.Fatalf("expected unknown id lookup to fail")
	}
	if _, ok := c.ItemByID("  sushi-1  "); !ok {
		t.Fatalf("expected id lookup to trim spaces")
	}
}

func TestCategoryIconFallback(t *testing.T) {
	if got := CategoryIcon("Sushi"); got != "/icons/sushi-icon.svg" {
		t.Fatalf("unexpected icon path: %s", got)
	}
	c, err := New()
	if err != nil {
		t.Fatalf("build catalog failed: %v", err)
	}
	for _, category := range c.Categories() {
		if category.Icon == "" {
			t.Fatalf("category %s missing icon", category.ID)
		}
	}
}
