package admins

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context) ([]Admin, error) {
	var items []Admin
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (Admin, error) {
	var a Admin
	err := r.db.WithContext(ctx).First(&a, "email = ?", email).Error
	return a, err
}

func (r *Repo) Create(ctx context.Context, email string) (Admin, error) {
	a := Admin{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return Admin{}, err
	}
	return a, nil
}

func IsDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}
