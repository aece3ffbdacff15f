package categories

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nguyenlong0920/ecommerce-admin/internal/shared/apperr"
)

// minimal product shape so Delete's reference cleanup has a table to touch
type testProduct struct {
	ID         string  `gorm:"type:char(36);primaryKey"`
	CategoryID *string `gorm:"type:char(36)"`
}

func (testProduct) TableName() string { return "products" }

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&Category{}, &testProduct{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return db
}

func TestCreateAndProperties(t *testing.T) {
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	props := []Property{
		{Name: "color", Values: []string{"red", "green", "blue"}},
		{Name: "size", Values: []string{"s", "m", "l"}},
	}
	c, err := svc.Create(ctx, "Shirts", props)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := svc.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	decoded := got.Properties()
	if len(decoded) != 2 {
		t.Fatalf("expected 2 properties, got %d", len(decoded))
	}
	// order of definition survives the round-trip
	if decoded[0].Name != "color" || decoded[1].Name != "size" {
		t.Errorf("property order lost: %+v", decoded)
	}
	if len(decoded[0].Values) != 3 || decoded[0].Values[2] != "blue" {
		t.Errorf("unexpected values: %+v", decoded[0].Values)
	}
}

func TestCreateEmptyName(t *testing.T) {
	svc := NewService(setupTestDB(t))

	_, err := svc.Create(context.Background(), "   ", nil)
	if !apperr.IsKind(err, apperr.Invalid) {
		t.Errorf("expected Invalid for empty name, got %v", err)
	}
}

func TestCleanPropertiesTrims(t *testing.T) {
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	c, err := svc.Create(ctx, "Mugs", []Property{
		{Name: " material ", Values: []string{" ceramic ", "", "glass"}},
		{Name: "", Values: []string{"dropped"}},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	props := c.Properties()
	if len(props) != 1 {
		t.Fatalf("expected nameless property dropped, got %+v", props)
	}
	if props[0].Name != "material" {
		t.Errorf("expected trimmed name, got %q", props[0].Name)
	}
	if len(props[0].Values) != 2 || props[0].Values[0] != "ceramic" {
		t.Errorf("expected trimmed non-empty values, got %+v", props[0].Values)
	}
}

func TestUpdateReplacesProperties(t *testing.T) {
	svc := NewService(setupTestDB(t))
	ctx := context.Background()

	c, _ := svc.Create(ctx, "Shirts", []Property{
		{Name: "color", Values: []string{"red"}},
		{Name: "size", Values: []string{"m"}},
	})

	updated, err := svc.Update(ctx, c.ID, "Shirts", []Property{
		{Name: "color", Values: []string{"red", "black"}},
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	props := updated.Properties()
	if len(props) != 1 || props[0].Name != "color" {
		t.Errorf("expected only color to remain, got %+v", props)
	}
}

func TestUpdateMissing(t *testing.T) {
	svc := NewService(setupTestDB(t))

	_, err := svc.Update(context.Background(), "nope", "X", nil)
	if !apperr.IsKind(err, apperr.NotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestDeleteClearsProductReferences(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	c, _ := svc.Create(ctx, "Shirts", nil)

	catID := c.ID
	if err := db.Create(&testProduct{ID: "p1", CategoryID: &catID}).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}

	if err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var p testProduct
	if err := db.First(&p, "id = ?", "p1").Error; err != nil {
		t.Fatalf("product should survive category delete: %v", err)
	}
	if p.CategoryID != nil {
		t.Errorf("expected category reference cleared, got %v", *p.CategoryID)
	}

	if _, err := svc.Get(ctx, c.ID); !apperr.IsKind(err, apperr.NotFound) {
		t.Errorf("expected category gone, got %v", err)
	}
}
