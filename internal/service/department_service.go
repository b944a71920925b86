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

// ── department business errors ──

var (
	ErrDepartmentNotFound   = errors.New("department not found")
	ErrDepartmentNameExists = errors.New("department name already exists")
	ErrDepartmentHasPorters = errors.New("department has porters assigned and cannot be deactivated")
)

// DepartmentService is the department business interface.
type DepartmentService interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.DepartmentResponse, error)
	List(ctx context.Context, req *dto.DepartmentListRequest) ([]dto.DepartmentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartmentService creates a DepartmentService.
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	existing, err := s.repo.Department.GetByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("department lookup failed", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrDepartmentNameExists
	}

	dept := &model.Department{
		Name:                 req.Name,
		Is247:                req.Is247,
		PortersRequiredDay:   req.PortersRequiredDay,
		PortersRequiredNight: req.PortersRequiredNight,
		IsActive:             true,
	}
	if err := s.repo.Department.Create(ctx, dept); err != nil {
		s.logger.Error("department create failed", zap.Error(err))
		return nil, err
	}

	return toDepartmentResponse(dept), nil
}

func (s *departmentService) GetByID(ctx context.Context, id string) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("department lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toDepartmentResponse(dept), nil
}

func (s *departmentService) List(ctx context.Context, req *dto.DepartmentListRequest) ([]dto.DepartmentResponse, error) {
	var (
		depts []model.Department
		err   error
	)
	if req.IncludeInactive {
		depts, err = s.repo.Department.ListAll(ctx)
	} else {
		depts, err = s.repo.Department.List(ctx)
	}
	if err != nil {
		s.logger.Error("department list failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		result = append(result, *toDepartmentResponse(&depts[i]))
	}
	return result, nil
}

func (s *departmentService) Update(ctx context.Context, id string, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		s.logger.Error("department lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil && *req.Name != dept.Name {
		existing, err := s.repo.Department.GetByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrDepartmentNameExists
		}
		dept.Name = *req.Name
	}
	if req.Is247 != nil {
		dept.Is247 = *req.Is247
	}
	if req.PortersRequiredDay != nil {
		dept.PortersRequiredDay = *req.PortersRequiredDay
	}
	if req.PortersRequiredNight != nil {
		dept.PortersRequiredNight = *req.PortersRequiredNight
	}
	if req.IsActive != nil {
		dept.IsActive = *req.IsActive
	}

	if err := s.repo.Department.Update(ctx, dept); err != nil {
		s.logger.Error("department update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toDepartmentResponse(dept), nil
}

// Deactivate marks a department inactive. Departments with active
// porters posted to them are kept active so no porter loses their
// posting silently.
func (s *departmentService) Deactivate(ctx context.Context, id string) error {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartmentNotFound
		}
		s.logger.Error("department lookup failed", zap.String("id", id), zap.Error(err))
		return err
	}

	count, err := s.repo.Department.CountPorters(ctx, dept.DepartmentID)
	if err != nil {
		s.logger.Error("department porter count failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrDepartmentHasPorters
	}

	dept.IsActive = false
	if err := s.repo.Department.Update(ctx, dept); err != nil {
		s.logger.Error("department deactivate failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func toDepartmentResponse(dept *model.Department) *dto.DepartmentResponse {
	return &dto.DepartmentResponse{
		ID:                   dept.DepartmentID,
		Name:                 dept.Name,
		Is247:                dept.Is247,
		PortersRequiredDay:   dept.PortersRequiredDay,
		PortersRequiredNight: dept.PortersRequiredNight,
		IsActive:             dept.IsActive,
		CreatedAt:            dept.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:            dept.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
