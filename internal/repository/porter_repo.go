package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Hypha-Media-UK/rotascope2/internal/model"
)

// PorterRepository is the porter data-access interface.
//
// List and ListAll preload the associations the availability resolver
// needs (shift, postings, custom hours) so callers can evaluate a porter
// without further round trips.
type PorterRepository interface {
	Create(ctx context.Context, porter *model.Porter) error
	GetByID(ctx context.Context, id string) (*model.Porter, error)
	List(ctx context.Context) ([]model.Porter, error)
	ListAll(ctx context.Context) ([]model.Porter, error)
	ListByShift(ctx context.Context, shiftID string) ([]model.Porter, error)
	Update(ctx context.Context, porter *model.Porter) error
	ReplaceHours(ctx context.Context, porterID string, hours []model.PorterHours) error
}

type porterRepo struct {
	db *gorm.DB
}

// NewPorterRepo creates a PorterRepository backed by gorm.
func NewPorterRepo(db *gorm.DB) PorterRepository {
	return &porterRepo{db: db}
}

func (r *porterRepo) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Shift").
		Preload("RegularDepartment").
		Preload("RegularService").
		Preload("TempDepartment").
		Preload("TempService").
		Preload("CustomHours")
}

func (r *porterRepo) Create(ctx context.Context, porter *model.Porter) error {
	return r.db.WithContext(ctx).Create(porter).Error
}

func (r *porterRepo) GetByID(ctx context.Context, id string) (*model.Porter, error) {
	var porter model.Porter
	err := r.withAssociations(ctx).
		Where("porter_id = ?", id).
		First(&porter).Error
	if err != nil {
		return nil, err
	}
	return &porter, nil
}

func (r *porterRepo) List(ctx context.Context) ([]model.Porter, error) {
	var porters []model.Porter
	err := r.withAssociations(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&porters).Error
	return porters, err
}

func (r *porterRepo) ListAll(ctx context.Context) ([]model.Porter, error) {
	var porters []model.Porter
	err := r.withAssociations(ctx).
		Order("name ASC").
		Find(&porters).Error
	return porters, err
}

func (r *porterRepo) ListByShift(ctx context.Context, shiftID string) ([]model.Porter, error) {
	var porters []model.Porter
	err := r.withAssociations(ctx).
		Where("shift_id = ? AND is_active = ?", shiftID, true).
		Order("name ASC").
		Find(&porters).Error
	return porters, err
}

func (r *porterRepo) Update(ctx context.Context, porter *model.Porter) error {
	return r.db.WithContext(ctx).Save(porter).Error
}

// ReplaceHours swaps a porter's custom hours wholesale in one
// transaction. An empty slice clears them.
func (r *porterRepo) ReplaceHours(ctx context.Context, porterID string, hours []model.PorterHours) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("porter_id = ?", porterID).
			Delete(&model.PorterHours{}).Error; err != nil {
			return err
		}
		if len(hours) == 0 {
			return nil
		}
		return tx.Create(&hours).Error
	})
}
