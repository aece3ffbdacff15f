package products

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

type ListParams struct {
	CategoryID string // optional filter
}

func (r *Repo) List(ctx context.Context, in ListParams) ([]Product, error) {
	q := r.db.WithContext(ctx).Model(&Product{})
	if in.CategoryID != "" {
		q = q.Where("category_id = ?", in.CategoryID)
	}

	var items []Product
	err := q.Order("updated_at DESC").Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return p, err
}

type SaveInput struct {
	Title       string
	Description string
	PriceCents  int64
	Images      []string
	CategoryID  *string
	Properties  map[string]string
}

func (r *Repo) Create(ctx context.Context, in SaveInput) (Product, error) {
	imagesJSON, err := encodeImages(in.Images)
	if err != nil {
		return Product{}, err
	}
	propsJSON, err := encodeProperties(in.Properties)
	if err != nil {
		return Product{}, err
	}

	p := Product{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Description:    in.Description,
		PriceCents:     in.PriceCents,
		ImagesJSON:     imagesJSON,
		CategoryID:     in.CategoryID,
		PropertiesJSON: propsJSON,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *Repo) Update(ctx context.Context, id string, in SaveInput) (int64, error) {
	imagesJSON, err := encodeImages(in.Images)
	if err != nil {
		return 0, err
	}
	propsJSON, err := encodeProperties(in.Properties)
	if err != nil {
		return 0, err
	}

	res := r.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":           in.Title,
			"description":     in.Description,
			"price_cents":     in.PriceCents,
			"images_json":     imagesJSON,
			"category_id":     in.CategoryID,
			"properties_json": propsJSON,
			"updated_at":      time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Product{}, "id = ?", id).Error
}
