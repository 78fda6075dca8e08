package history

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateAndTrim(ctx context.Context, h *History, keep int) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]History, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteOne(ctx context.Context, id, userID uuid.UUID) (int64, error)
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateAndTrim inserts h and removes every row of the same user beyond the
// keep newest, in one transaction. It returns how many rows were removed.
func (r *repository) CreateAndTrim(ctx context.Context, h *History, keep int) (int64, error) {
	var trimmed int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" {
			// held until commit; serializes writers of the same user across instances
			if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", h.UserID.String()).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(h).Error; err != nil {
			return err
		}

		var ids []uuid.UUID
		if err := tx.Model(&History{}).
			Where("user_id = ?", h.UserID).
			Order("created_at DESC").
			Order("id DESC").
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) <= keep {
			return nil
		}

		res := tx.Where("id IN ?", ids[keep:]).Delete(&History{})
		if res.Error != nil {
			return res.Error
		}
		trimmed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return trimmed, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]History, error) {
	items := []History{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&History{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *repository) DeleteOne(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&History{})
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&History{})
	return res.RowsAffected, res.Error
}
