package categories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context) ([]Category, error) {
	var items []Category
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id string) (Category, error) {
	var c Category
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func (r *Repo) Create(ctx context.Context, name string, props []Property) (Category, error) {
	propsJSON, err := encodeProperties(props)
	if err != nil {
		return Category{}, err
	}
	c := Category{
		ID:             uuid.NewString(),
		Name:           name,
		PropertiesJSON: propsJSON,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return Category{}, err
	}
	return c, nil
}

func (r *Repo) Update(ctx context.Context, id, name string, props []Property) (int64, error) {
	propsJSON, err := encodeProperties(props)
	if err != nil {
		return 0, err
	}
	res := r.db.WithContext(ctx).Model(&Category{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":            name,
			"properties_json": propsJSON,
			"updated_at":      time.Now(),
		})
	return res.RowsAffected, res.Error
}
