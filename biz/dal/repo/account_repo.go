package repo

import (
	"context"

	"pokedex/server/biz/model/storage"

	"gorm.io/gorm"
)

// AccountRepository is the thin CRUD surface over the users table. It
// raises storage failures untranslated; interpreting them is the
// service's job.
type AccountRepository interface {
	FindByName(ctx context.Context, name string) (*storage.AccountRecord, error)
	FindAll(ctx context.Context) ([]storage.AccountRecord, error)
	Create(ctx context.Context, rec *storage.AccountRecord) error
	UpdateByName(ctx context.Context, name string, rec *storage.AccountRecord) error
	DeleteByName(ctx context.Context, name string) error
}

type accountRepositoryGorm struct {
	db *gorm.DB
}

func NewAccountRepositoryGorm(db *gorm.DB) AccountRepository {
	return &accountRepositoryGorm{db: db}
}

func (r *accountRepositoryGorm) FindByName(ctx context.Context, name string) (*storage.AccountRecord, error) {
	var m storage.AccountRecord
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *accountRepositoryGorm) FindAll(ctx context.Context) ([]storage.AccountRecord, error) {
	var ms []storage.AccountRecord
	if err := r.db.WithContext(ctx).Find(&ms).Error; err != nil {
		return nil, err
	}
	return ms, nil
}

// Create inserts inside a transaction that commits before returning.
func (r *accountRepositoryGorm) Create(ctx context.Context, rec *storage.AccountRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(rec).Error
	})
}

func (r *accountRepositoryGorm) UpdateByName(ctx context.Context, name string, rec *storage.AccountRecord) error {
	return r.db.WithContext(ctx).
		Model(&storage.AccountRecord{}).
		Where("name = ?", name).
		Updates(map[string]any{
			"name": rec.Name,
			"salt": rec.Salt,
			"hash": rec.Hash,
		}).Error
}

func (r *accountRepositoryGorm) DeleteByName(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).
		Where("name = ?", name).
		Delete(&storage.AccountRecord{}).Error
}
