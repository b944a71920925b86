package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Hypha-Media-UK/rotascope2/internal/model"
)

// ShiftTypeRepository is the shift-type data-access interface.
type ShiftTypeRepository interface {
	Create(ctx context.Context, st *model.ShiftType) error
	GetByID(ctx context.Context, id string) (*model.ShiftType, error)
	List(ctx context.Context) ([]model.ShiftType, error)
	Update(ctx context.Context, st *model.ShiftType) error
	CountShifts(ctx context.Context, shiftTypeID string) (int64, error)
}

// ShiftRepository is the shift-pattern data-access interface.
type ShiftRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	GetByID(ctx context.Context, id string) (*model.Shift, error)
	List(ctx context.Context) ([]model.Shift, error)
	ListAll(ctx context.Context) ([]model.Shift, error)
	Update(ctx context.Context, shift *model.Shift) error
	CountPorters(ctx context.Context, shiftID string) (int64, error)
}

// ── ShiftType implementation ──

type shiftTypeRepo struct {
	db *gorm.DB
}

// NewShiftTypeRepo creates a ShiftTypeRepository backed by gorm.
func NewShiftTypeRepo(db *gorm.DB) ShiftTypeRepository {
	return &shiftTypeRepo{db: db}
}

func (r *shiftTypeRepo) Create(ctx context.Context, st *model.ShiftType) error {
	return r.db.WithContext(ctx).Create(st).Error
}

func (r *shiftTypeRepo) GetByID(ctx context.Context, id string) (*model.ShiftType, error) {
	var st model.ShiftType
	err := r.db.WithContext(ctx).
		Where("shift_type_id = ?", id).
		First(&st).Error
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *shiftTypeRepo) List(ctx context.Context) ([]model.ShiftType, error) {
	var types []model.ShiftType
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("starts_at ASC").
		Find(&types).Error
	return types, err
}

func (r *shiftTypeRepo) Update(ctx context.Context, st *model.ShiftType) error {
	return r.db.WithContext(ctx).Save(st).Error
}

func (r *shiftTypeRepo) CountShifts(ctx context.Context, shiftTypeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Shift{}).
		Where("shift_type_id = ? AND is_active = ?", shiftTypeID, true).
		Count(&count).Error
	return count, err
}

// ── Shift implementation ──

type shiftRepo struct {
	db *gorm.DB
}

// NewShiftRepo creates a ShiftRepository backed by gorm.
func NewShiftRepo(db *gorm.DB) ShiftRepository {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) Create(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepo) GetByID(ctx context.Context, id string) (*model.Shift, error) {
	var shift model.Shift
	err := r.db.WithContext(ctx).
		Preload("ShiftType").
		Where("shift_id = ?", id).
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepo) List(ctx context.Context) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Preload("ShiftType").
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepo) ListAll(ctx context.Context) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Preload("ShiftType").
		Order("name ASC").
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepo) Update(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Save(shift).Error
}

func (r *shiftRepo) CountPorters(ctx context.Context, shiftID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Porter{}).
		Where("shift_id = ? AND is_active = ?", shiftID, true).
		Count(&count).Error
	return count, err
}
