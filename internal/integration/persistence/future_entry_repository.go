package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/centavo/backend/internal/application/adapter"
	"github.com/centavo/backend/internal/domain/entity"
	domainerror "github.com/centavo/backend/internal/domain/error"
	"github.com/centavo/backend/internal/integration/persistence/model"
)

// futureEntryRepository implements the adapter.FutureEntryRepository interface.
type futureEntryRepository struct {
	db *gorm.DB
}

// NewFutureEntryRepository creates a new future entry repository instance.
func NewFutureEntryRepository(db *gorm.DB) adapter.FutureEntryRepository {
	return &futureEntryRepository{
		db: db,
	}
}

// Create creates a new future entry in the database.
func (r *futureEntryRepository) Create(ctx context.Context, entry *entity.FutureEntry) error {
	entryModel := model.FutureEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CreateBatch creates a set of future entries in a single operation.
func (r *futureEntryRepository) CreateBatch(ctx context.Context, entries []*entity.FutureEntry) error {
	if len(entries) == 0 {
		return nil
	}

	entryModels := make([]*model.FutureEntryModel, len(entries))
	for i, e := range entries {
		entryModels[i] = model.FutureEntryFromEntity(e)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(entryModels).Error
	})
}

// FindByID retrieves a future entry by its ID.
func (r *futureEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FutureEntry, error) {
	var entryModel model.FutureEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFutureEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByFilter retrieves future entries matching the filter, ordered by due date.
func (r *futureEntryRepository) FindByFilter(ctx context.Context, filter adapter.FutureEntryFilter) ([]*entity.FutureEntry, error) {
	query := r.db.WithContext(ctx).Model(&model.FutureEntryModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.PurchaseID != nil {
		query = query.Where("purchase_id = ?", *filter.PurchaseID)
	}
	if filter.Month != nil {
		query = query.Where("due_date >= ? AND due_date <= ?", filter.Month.Start(), filter.Month.End())
	}

	var entryModels []model.FutureEntryModel
	result := query.
		Order("due_date ASC, created_at ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.FutureEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// Update updates an existing future entry in the database.
func (r *futureEntryRepository) Update(ctx context.Context, entry *entity.FutureEntry) error {
	entryModel := model.FutureEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Save(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a future entry from the database.
func (r *futureEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.FutureEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteByPurchase removes every future entry belonging to a purchase.
func (r *futureEntryRepository) DeleteByPurchase(ctx context.Context, purchaseID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Delete(&model.FutureEntryModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
