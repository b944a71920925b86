package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Hypha-Media-UK/rotascope2/internal/model"
)

// FrozenScheduleRepository is the snapshot data-access interface.
// Snapshots are append-only: no update or delete methods exist.
type FrozenScheduleRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*model.FrozenSchedule, error)
	ListDates(ctx context.Context, from, to time.Time) ([]model.FrozenSchedule, error)
	CreateSnapshot(ctx context.Context, snapshot *model.FrozenSchedule, assignments []model.FrozenPorterAssignment) error
	ListAssignments(ctx context.Context, frozenScheduleID string) ([]model.FrozenPorterAssignment, error)
}

type frozenScheduleRepo struct {
	db *gorm.DB
}

// NewFrozenScheduleRepo creates a FrozenScheduleRepository backed by gorm.
func NewFrozenScheduleRepo(db *gorm.DB) FrozenScheduleRepository {
	return &frozenScheduleRepo{db: db}
}

func (r *frozenScheduleRepo) GetByDate(ctx context.Context, date time.Time) (*model.FrozenSchedule, error) {
	var snapshot model.FrozenSchedule
	err := r.db.WithContext(ctx).
		Where("date = ?", date.Format("2006-01-02")).
		First(&snapshot).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *frozenScheduleRepo) ListDates(ctx context.Context, from, to time.Time) ([]model.FrozenSchedule, error) {
	var snapshots []model.FrozenSchedule
	err := r.db.WithContext(ctx).
		Select("frozen_schedule_id", "date", "frozen_at").
		Where("date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date ASC").
		Find(&snapshots).Error
	return snapshots, err
}

// CreateSnapshot writes the snapshot header and its denormalized
// assignment rows in a single transaction. The unique index on date
// rejects a concurrent second freeze of the same day.
func (r *frozenScheduleRepo) CreateSnapshot(ctx context.Context, snapshot *model.FrozenSchedule, assignments []model.FrozenPorterAssignment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(snapshot).Error; err != nil {
			return err
		}
		for i := range assignments {
			assignments[i].FrozenScheduleID = snapshot.FrozenScheduleID
		}
		if len(assignments) == 0 {
			return nil
		}
		return tx.Create(&assignments).Error
	})
}

func (r *frozenScheduleRepo) ListAssignments(ctx context.Context, frozenScheduleID string) ([]model.FrozenPorterAssignment, error) {
	var rows []model.FrozenPorterAssignment
	err := r.db.WithContext(ctx).
		Where("frozen_schedule_id = ?", frozenScheduleID).
		Order("shift_id ASC, porter_id ASC").
		Find(&rows).Error
	return rows, err
}
