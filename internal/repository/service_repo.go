package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Hypha-Media-UK/rotascope2/internal/model"
)

// ServiceRepository is the hospital-service data-access interface.
type ServiceRepository interface {
	Create(ctx context.Context, svc *model.Service) error
	GetByID(ctx context.Context, id string) (*model.Service, error)
	GetByName(ctx context.Context, name string) (*model.Service, error)
	List(ctx context.Context) ([]model.Service, error)
	ListAll(ctx context.Context) ([]model.Service, error)
	Update(ctx context.Context, svc *model.Service) error
	CountPorters(ctx context.Context, serviceID string) (int64, error)
}

type serviceRepo struct {
	db *gorm.DB
}

// NewServiceRepo creates a ServiceRepository backed by gorm.
func NewServiceRepo(db *gorm.DB) ServiceRepository {
	return &serviceRepo{db: db}
}

func (r *serviceRepo) Create(ctx context.Context, svc *model.Service) error {
	return r.db.WithContext(ctx).Create(svc).Error
}

func (r *serviceRepo) GetByID(ctx context.Context, id string) (*model.Service, error) {
	var svc model.Service
	err := r.db.WithContext(ctx).
		Where("service_id = ?", id).
		First(&svc).Error
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepo) GetByName(ctx context.Context, name string) (*model.Service, error) {
	var svc model.Service
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&svc).Error
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepo) List(ctx context.Context) ([]model.Service, error) {
	var svcs []model.Service
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&svcs).Error
	return svcs, err
}

func (r *serviceRepo) ListAll(ctx context.Context) ([]model.Service, error) {
	var svcs []model.Service
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&svcs).Error
	return svcs, err
}

func (r *serviceRepo) Update(ctx context.Context, svc *model.Service) error {
	return r.db.WithContext(ctx).Save(svc).Error
}

func (r *serviceRepo) CountPorters(ctx context.Context, serviceID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Porter{}).
		Where("regular_service_id = ? AND is_active = ?", serviceID, true).
		Count(&count).Error
	return count, err
}
