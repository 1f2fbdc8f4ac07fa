package category_controller

import (
	"testing"

	"github.com/google/uuid"

	"github.com/rikimaru63/cardshop-hp-miyabi/models"
)

func testCategory(t *testing.T, slug string, parentID *uuid.UUID) models.Category {
	t.Helper()
	id, err := uuid.NewV7()
	if err != nil {
		t.Fatalf("uuid.NewV7: %v", err)
	}
	return models.Category{
		ID:       id,
		NameEn:   slug,
		Slug:     slug,
		ParentID: parentID,
	}
}

func TestAssembleCategoryTreeNestsChildrenUnderParents(t *testing.T) {
	pokemon := testCategory(t, "pokemon", nil)
	onePiece := testCategory(t, "one-piece", nil)
	singles := testCategory(t, "pokemon-singles", &pokemon.ID)
	sealed := testCategory(t, "pokemon-sealed", &pokemon.ID)

	tree := assembleCategoryTree(
		[]models.Category{pokemon, onePiece, singles, sealed},
		map[string]int{
			singles.ID.String(): 7,
			sealed.ID.String():  2,
			pokemon.ID.String(): 1,
		},
	)

	if len(tree) != 2 {
		t.Fatalf("got %d top-level categories, want 2", len(tree))
	}
	if tree[0].Slug != "pokemon" || tree[1].Slug != "one-piece" {
		t.Fatalf("top-level order = [%s, %s], want input order", tree[0].Slug, tree[1].Slug)
	}

	if len(tree[0].Subcats) != 2 {
		t.Fatalf("pokemon has %d subcategories, want 2", len(tree[0].Subcats))
	}
	if tree[0].Subcats[0].Slug != "pokemon-singles" || tree[0].Subcats[1].Slug != "pokemon-sealed" {
		t.Errorf("pokemon subcategories = [%s, %s], want input order",
			tree[0].Subcats[0].Slug, tree[0].Subcats[1].Slug)
	}
	if tree[1].Subcats != nil {
		t.Errorf("one-piece should have no subcategories, got %d", len(tree[1].Subcats))
	}
}

func TestAssembleCategoryTreeAppliesProductCounts(t *testing.T) {
	parent := testCategory(t, "yugioh", nil)
	child := testCategory(t, "yugioh-singles", &parent.ID)

	tree := assembleCategoryTree(
		[]models.Category{parent, child},
		map[string]int{child.ID.String(): 12},
	)

	if len(tree) != 1 {
		t.Fatalf("got %d top-level categories, want 1", len(tree))
	}
	if tree[0].ProductCount != 0 {
		t.Errorf("parent without a count row should report 0, got %d", tree[0].ProductCount)
	}
	if got := tree[0].Subcats[0].ProductCount; got != 12 {
		t.Errorf("child product count = %d, want 12", got)
	}
}

func TestAssembleCategoryTreeEmptyInput(t *testing.T) {
	tree := assembleCategoryTree(nil, nil)
	if tree == nil {
		t.Fatal("empty input should yield an empty slice, not nil")
	}
	if len(tree) != 0 {
		t.Fatalf("got %d categories, want 0", len(tree))
	}
}
