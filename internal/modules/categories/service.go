package categories

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/nguyenlong0920/ecommerce-admin/internal/shared/apperr"
)

type Service struct {
	db   *gorm.DB
	repo *Repo
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, repo: NewRepo(db)}
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Category, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return Category{}, apperr.NotFoundErr("Category not found.")
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, name string, props []Property) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, apperr.InvalidErr("Category name is required.", map[string]string{"name": "This field is required."})
	}

	c, err := s.repo.Create(ctx, name, cleanProperties(props))
	if err != nil {
		return Category{}, apperr.Wrap(err)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id, name string, props []Property) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, apperr.InvalidErr("Category name is required.", map[string]string{"name": "This field is required."})
	}

	affected, err := s.repo.Update(ctx, id, name, cleanProperties(props))
	if err != nil {
		return Category{}, apperr.Wrap(err)
	}
	if affected == 0 {
		return Category{}, apperr.NotFoundErr("Category not found.")
	}
	return s.Get(ctx, id)
}

// Delete removes a category and clears the reference on any product that
// still points at it, in one transaction. Products survive as uncategorized.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("products").
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return apperr.Wrap(err)
		}

		res := tx.Delete(&Category{}, "id = ?", id)
		if res.Error != nil {
			return apperr.Wrap(res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFoundErr("Category not found.")
		}
		return nil
	})
}

// cleanProperties drops nameless properties and trims every value, keeping
// the submitted order.
func cleanProperties(props []Property) []Property {
	out := make([]Property, 0, len(props))
	for _, p := range props {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		values := make([]string, 0, len(p.Values))
		for _, v := range p.Values {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		out = append(out, Property{Name: name, Values: values})
	}
	return out
}
