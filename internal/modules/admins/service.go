package admins

import (
	"context"
	"errors"
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

func (s *Service) List(ctx context.Context) ([]Admin, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (Admin, error) {
	return s.repo.GetByEmail(ctx, normalizeEmail(email))
}

func (s *Service) Create(ctx context.Context, email string) (Admin, error) {
	email = normalizeEmail(email)

	var existing Admin
	err := s.db.WithContext(ctx).First(&existing, "email = ?", email).Error
	if err == nil {
		return Admin{}, apperr.InvalidErr("Admin email already exists!", map[string]string{"email": "Already in use."})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Admin{}, apperr.Wrap(err)
	}

	a, err := s.repo.Create(ctx, email)
	if err != nil {
		// unique index may still fire between the check and the insert
		if IsDuplicateKey(err) {
			return Admin{}, apperr.InvalidErr("Admin email already exists!", map[string]string{"email": "Already in use."})
		}
		return Admin{}, apperr.Wrap(err)
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id, email string) (Admin, error) {
	email = normalizeEmail(email)

	var a Admin
	if err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Admin{}, apperr.NotFoundErr("Admin not found.")
		}
		return Admin{}, apperr.Wrap(err)
	}

	// reject when the email belongs to a different admin
	var other Admin
	err := s.db.WithContext(ctx).First(&other, "email = ?", email).Error
	if err == nil && other.ID != id {
		return Admin{}, apperr.InvalidErr("Admin email already exists!", map[string]string{"email": "Already in use."})
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return Admin{}, apperr.Wrap(err)
	}

	if err := s.db.WithContext(ctx).Model(&Admin{}).
		Where("id = ?", id).
		Update("email", email).Error; err != nil {
		if IsDuplicateKey(err) {
			return Admin{}, apperr.InvalidErr("Admin email already exists!", map[string]string{"email": "Already in use."})
		}
		return Admin{}, apperr.Wrap(err)
	}

	a.Email = email
	return a, nil
}

// Delete removes an admin. The last remaining admin can never be deleted.
// The guard lives in the statement itself: count and delete are one atomic
// operation, so two concurrent deletes against a two-admin table cannot both
// commit and empty it. The derived table is required by MySQL, which refuses
// a plain subquery on the delete target.
func (s *Service) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Exec(
		"DELETE FROM admins WHERE id = ? AND (SELECT c FROM (SELECT COUNT(*) AS c FROM admins) t) > 1",
		id,
	)
	if res.Error != nil {
		return apperr.Wrap(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// nothing deleted: either the id is unknown or it names the last admin
	var exists int64
	if err := s.db.WithContext(ctx).Model(&Admin{}).Where("id = ?", id).Count(&exists).Error; err != nil {
		return apperr.Wrap(err)
	}
	if exists == 0 {
		return apperr.NotFoundErr("Admin not found.")
	}
	return apperr.ConflictErr("At least one admin is required.")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
