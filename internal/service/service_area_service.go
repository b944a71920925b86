package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Hypha-Media-UK/rotascope2/internal/dto"
	"github.com/Hypha-Media-UK/rotascope2/internal/model"
	"github.com/Hypha-Media-UK/rotascope2/internal/repository"
)

// ── service business errors ──

var (
	ErrServiceNotFound   = errors.New("service not found")
	ErrServiceNameExists = errors.New("service name already exists")
	ErrServiceHasPorters = errors.New("service has porters assigned and cannot be deactivated")
)

// ServiceAreaService manages hospital-wide porter services (post rounds,
// waste collection and the like).
type ServiceAreaService interface {
	Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ServiceResponse, error)
	List(ctx context.Context, req *dto.ServiceListRequest) ([]dto.ServiceResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type serviceAreaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewServiceAreaService creates a ServiceAreaService.
func NewServiceAreaService(repo *repository.Repository, logger *zap.Logger) ServiceAreaService {
	return &serviceAreaService{repo: repo, logger: logger}
}

func (s *serviceAreaService) Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	existing, err := s.repo.Service.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("service lookup failed", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrServiceNameExists
	}

	svc := &model.Service{
		Name:                 req.Name,
		Code:                 req.Code,
		Is247:                req.Is247,
		PortersRequiredDay:   req.PortersRequiredDay,
		PortersRequiredNight: req.PortersRequiredNight,
		IsActive:             true,
	}
	if err := s.repo.Service.Create(ctx, svc); err != nil {
		s.logger.Error("service create failed", zap.Error(err))
		return nil, err
	}
	return toServiceResponse(svc), nil
}

func (s *serviceAreaService) GetByID(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	svc, err := s.repo.Service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("service lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toServiceResponse(svc), nil
}

func (s *serviceAreaService) List(ctx context.Context, req *dto.ServiceListRequest) ([]dto.ServiceResponse, error) {
	var (
		svcs []model.Service
		err  error
	)
	if req.IncludeInactive {
		svcs, err = s.repo.Service.ListAll(ctx)
	} else {
		svcs, err = s.repo.Service.List(ctx)
	}
	if err != nil {
		s.logger.Error("service list failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ServiceResponse, 0, len(svcs))
	for i := range svcs {
		result = append(result, *toServiceResponse(&svcs[i]))
	}
	return result, nil
}

func (s *serviceAreaService) Update(ctx context.Context, id string, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	svc, err := s.repo.Service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("service lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil && *req.Name != svc.Name {
		existing, err := s.repo.Service.GetByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrServiceNameExists
		}
		svc.Name = *req.Name
	}
	if req.Code != nil {
		svc.Code = *req.Code
	}
	if req.Is247 != nil {
		svc.Is247 = *req.Is247
	}
	if req.PortersRequiredDay != nil {
		svc.PortersRequiredDay = *req.PortersRequiredDay
	}
	if req.PortersRequiredNight != nil {
		svc.PortersRequiredNight = *req.PortersRequiredNight
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.repo.Service.Update(ctx, svc); err != nil {
		s.logger.Error("service update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toServiceResponse(svc), nil
}

func (s *serviceAreaService) Deactivate(ctx context.Context, id string) error {
	svc, err := s.repo.Service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("service lookup failed", zap.String("id", id), zap.Error(err))
		return err
	}

	count, err := s.repo.Service.CountPorters(ctx, svc.ServiceID)
	if err != nil {
		s.logger.Error("service porter count failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrServiceHasPorters
	}

	svc.IsActive = false
	if err := s.repo.Service.Update(ctx, svc); err != nil {
		s.logger.Error("service deactivate failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toServiceResponse(svc *model.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:                   svc.ServiceID,
		Name:                 svc.Name,
		Code:                 svc.Code,
		Is247:                svc.Is247,
		PortersRequiredDay:   svc.PortersRequiredDay,
		PortersRequiredNight: svc.PortersRequiredNight,
		IsActive:             svc.IsActive,
		CreatedAt:            svc.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:            svc.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
