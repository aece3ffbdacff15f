package products

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/nguyenlong0920/ecommerce-admin/internal/modules/categories"
	"github.com/nguyenlong0920/ecommerce-admin/internal/shared/apperr"
)

type Service struct {
	repo       *Repo
	categories *categories.Repo
}

func NewService(db *gorm.DB) *Service {
	return &Service{repo: NewRepo(db), categories: categories.NewRepo(db)}
}

func (s *Service) List(ctx context.Context, categoryID string) ([]Product, error) {
	return s.repo.List(ctx, ListParams{CategoryID: categoryID})
}

// Detail is a product together with the properties its category currently
// defines. Only those are editable in the panel; values stored under removed
// properties remain in Product.Properties() untouched.
type Detail struct {
	Product            Product
	EditableProperties []categories.Property
}

func (s *Service) Get(ctx context.Context, id string) (Detail, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Detail{}, apperr.NotFoundErr("Product not found.")
		}
		return Detail{}, apperr.Wrap(err)
	}

	editable := []categories.Property{}
	if p.CategoryID != nil {
		if cat, err := s.categories.Get(ctx, *p.CategoryID); err == nil {
			editable = cat.Properties()
		}
	}
	return Detail{Product: p, EditableProperties: editable}, nil
}

func (s *Service) Create(ctx context.Context, in SaveInput) (Product, error) {
	if err := s.validate(ctx, &in); err != nil {
		return Product{}, err
	}
	p, err := s.repo.Create(ctx, in)
	if err != nil {
		return Product{}, apperr.Wrap(err)
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id string, in SaveInput) (Product, error) {
	if err := s.validate(ctx, &in); err != nil {
		return Product{}, err
	}
	affected, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return Product{}, apperr.Wrap(err)
	}
	if affected == 0 {
		return Product{}, apperr.NotFoundErr("Product not found.")
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Wrap(err)
	}
	return nil
}

func (s *Service) validate(ctx context.Context, in *SaveInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return apperr.InvalidErr("Product name is required.", map[string]string{"title": "This field is required."})
	}
	if in.PriceCents < 0 {
		return apperr.InvalidErr("Price cannot be negative.", map[string]string{"price_cents": "Must be 0 or greater."})
	}

	// empty string from the form means "Uncategorized"
	if in.CategoryID != nil && strings.TrimSpace(*in.CategoryID) == "" {
		in.CategoryID = nil
	}
	if in.CategoryID != nil {
		if _, err := s.categories.Get(ctx, *in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.InvalidErr("Unknown category.", map[string]string{"category": "Category does not exist."})
			}
			return apperr.Wrap(err)
		}
	}
	return nil
}
