package products

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/categories"
	"github.com/nguyenlong0920/ecommerce-admin/internal/shared/apperr"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&categories.Category{}, &Product{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestCreateGetRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	cat, err := categories.NewService(db).Create(ctx, "Shirts", []categories.Property{
		{Name: "color", Values: []string{"red", "blue"}},
	})
	if err != nil {
		t.Fatalf("category create failed: %v", err)
	}

	catID := cat.ID
	p, err := svc.Create(ctx, SaveInput{
		Title:       "Plain Tee",
		Description: "A plain tee.",
		PriceCents:  1999,
		Images:      []string{"https://cdn.shop.test/b.png", "https://cdn.shop.test/a.png"},
		CategoryID:  &catID,
		Properties:  map[string]string{"color": "red"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	gp := got.Product
	if gp.Title != "Plain Tee" || gp.Description != "A plain tee." || gp.PriceCents != 1999 {
		t.Errorf("fields lost in round-trip: %+v", gp)
	}
	images := gp.Images()
	if len(images) != 2 || images[0] != "https://cdn.shop.test/b.png" {
		t.Errorf("image order lost: %+v", images)
	}
	if gp.CategoryID == nil || *gp.CategoryID != cat.ID {
		t.Errorf("category reference lost")
	}
	if gp.Properties()["color"] != "red" {
		t.Errorf("properties lost: %+v", gp.Properties())
	}
	if len(got.EditableProperties) != 1 || got.EditableProperties[0].Name != "color" {
		t.Errorf("expected color to be editable, got %+v", got.EditableProperties)
	}
}

func TestRemovedCategoryPropertyIsRetainedButNotEditable(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	catSvc := categories.NewService(db)
	ctx := context.Background()

	cat, _ := catSvc.Create(ctx, "Shirts", []categories.Property{
		{Name: "color", Values: []string{"red"}},
		{Name: "size", Values: []string{"m", "l"}},
	})

	catID := cat.ID
	p, _ := svc.Create(ctx, SaveInput{
		Title:      "Tee",
		CategoryID: &catID,
		Properties: map[string]string{"color": "red", "size": "l"},
	})

	// drop "size" from the category definition
	if _, err := catSvc.Update(ctx, cat.ID, "Shirts", []categories.Property{
		{Name: "color", Values: []string{"red"}},
	}); err != nil {
		t.Fatalf("category update failed: %v", err)
	}

	got, err := svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if len(got.EditableProperties) != 1 || got.EditableProperties[0].Name != "color" {
		t.Errorf("expected only color editable, got %+v", got.EditableProperties)
	}
	// the stored value under the removed property survives
	if got.Product.Properties()["size"] != "l" {
		t.Errorf("expected historical size value retained, got %+v", got.Product.Properties())
	}
}

func TestListFilterByCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	catSvc := categories.NewService(db)
	shirts, _ := catSvc.Create(ctx, "Shirts", nil)
	mugs, _ := catSvc.Create(ctx, "Mugs", nil)

	shirtsID, mugsID := shirts.ID, mugs.ID
	svc.Create(ctx, SaveInput{Title: "Tee", CategoryID: &shirtsID})
	svc.Create(ctx, SaveInput{Title: "Mug", CategoryID: &mugsID})
	svc.Create(ctx, SaveInput{Title: "Uncategorized thing"})

	all, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 products, got %d", len(all))
	}

	onlyShirts, err := svc.List(ctx, shirts.ID)
	if err != nil {
		t.Fatalf("filtered List failed: %v", err)
	}
	if len(onlyShirts) != 1 || onlyShirts[0].Title != "Tee" {
		t.Errorf("category filter wrong: %+v", onlyShirts)
	}
}

func TestValidation(t *testing.T) {
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	if _, err := svc.Create(ctx, SaveInput{Title: "  "}); !apperr.IsKind(err, apperr.Invalid) {
		t.Errorf("expected Invalid for empty title, got %v", err)
	}
	if _, err := svc.Create(ctx, SaveInput{Title: "T", PriceCents: -1}); !apperr.IsKind(err, apperr.Invalid) {
		t.Errorf("expected Invalid for negative price, got %v", err)
	}

	bogus := "no-such-category"
	if _, err := svc.Create(ctx, SaveInput{Title: "T", CategoryID: &bogus}); !apperr.IsKind(err, apperr.Invalid) {
		t.Errorf("expected Invalid for unknown category, got %v", err)
	}

	// empty string category means uncategorized, not an error
	empty := ""
	p, err := svc.Create(ctx, SaveInput{Title: "T", CategoryID: &empty})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.CategoryID != nil {
		t.Errorf("expected nil category, got %v", *p.CategoryID)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	p, _ := svc.Create(ctx, SaveInput{Title: "Tee", PriceCents: 1000})

	updated, err := svc.Update(ctx, p.ID, SaveInput{Title: "Better Tee", PriceCents: 1500})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Title != "Better Tee" || updated.PriceCents != 1500 {
		t.Errorf("update not applied: %+v", updated)
	}

	if _, err := svc.Update(ctx, "nope", SaveInput{Title: "X"}); !apperr.IsKind(err, apperr.NotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.Get(ctx, p.ID); !apperr.IsKind(err, apperr.NotFound) {
		t.Errorf("expected NotFound after delete, got %v", err)
	}
}
