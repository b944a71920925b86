package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Hypha-Media-UK/rotascope2/internal/dto"
	"github.com/Hypha-Media-UK/rotascope2/internal/model"
	"github.com/Hypha-Media-UK/rotascope2/internal/repository"
	"github.com/Hypha-Media-UK/rotascope2/internal/rota"
)

// ── porter business errors ──

var (
	ErrPorterNotFound          = errors.New("porter not found")
	ErrPorterPostingConflict   = errors.New("porter cannot hold a department and a service posting at once")
	ErrTempWindowInvalid       = errors.New("temporary assignment end date is before its start date")
	ErrTempLocationRequired    = errors.New("temporary assignment needs exactly one of department or service")
	ErrDuplicateCustomHoursDay = errors.New("custom hours contain more than one entry for the same weekday")
)

// PorterService is the porter business interface.
type PorterService interface {
	Create(ctx context.Context, req *dto.CreatePorterRequest) (*dto.PorterResponse, error)
	GetByID(ctx context.Context, id string) (*dto.PorterResponse, error)
	List(ctx context.Context, req *dto.PorterListRequest) ([]dto.PorterResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdatePorterRequest) (*dto.PorterResponse, error)
	Deactivate(ctx context.Context, id string) error

	SetTempAssignment(ctx context.Context, id string, req *dto.SetTempAssignmentRequest) (*dto.PorterResponse, error)
	ClearTempAssignment(ctx context.Context, id string) (*dto.PorterResponse, error)
	ReplaceHours(ctx context.Context, id string, req *dto.ReplacePorterHoursRequest) (*dto.PorterResponse, error)
}

type porterService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPorterService creates a PorterService.
func NewPorterService(repo *repository.Repository, logger *zap.Logger) PorterService {
	return &porterService{repo: repo, logger: logger}
}

func (s *porterService) Create(ctx context.Context, req *dto.CreatePorterRequest) (*dto.PorterResponse, error) {
	if req.RegularDepartmentID != nil && req.RegularServiceID != nil {
		return nil, ErrPorterPostingConflict
	}
	if err := s.checkReferences(ctx, req.ShiftID, req.RegularDepartmentID, req.RegularServiceID); err != nil {
		return nil, err
	}

	porter := &model.Porter{
		Name:                  req.Name,
		Email:                 req.Email,
		PorterType:            req.PorterType,
		ContractedHoursType:   req.ContractedHoursType,
		WeeklyContractedHours: req.WeeklyContractedHours,
		ShiftID:               req.ShiftID,
		PorterOffset:          req.PorterOffset,
		RegularDepartmentID:   req.RegularDepartmentID,
		RegularServiceID:      req.RegularServiceID,
		IsActive:              true,
	}
	if err := s.repo.Porter.Create(ctx, porter); err != nil {
		s.logger.Error("porter create failed", zap.Error(err))
		return nil, err
	}

	return s.GetByID(ctx, porter.PorterID)
}

func (s *porterService) GetByID(ctx context.Context, id string) (*dto.PorterResponse, error) {
	porter, err := s.repo.Porter.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPorterNotFound
		}
		s.logger.Error("porter lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toPorterResponse(porter), nil
}

func (s *porterService) List(ctx context.Context, req *dto.PorterListRequest) ([]dto.PorterResponse, error) {
	var (
		porters []model.Porter
		err     error
	)
	switch {
	case req.ShiftID != "":
		porters, err = s.repo.Porter.ListByShift(ctx, req.ShiftID)
	case req.IncludeInactive:
		porters, err = s.repo.Porter.ListAll(ctx)
	default:
		porters, err = s.repo.Porter.List(ctx)
	}
	if err != nil {
		s.logger.Error("porter list failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PorterResponse, 0, len(porters))
	for i := range porters {
		result = append(result, *toPorterResponse(&porters[i]))
	}
	return result, nil
}

func (s *porterService) Update(ctx context.Context, id string, req *dto.UpdatePorterRequest) (*dto.PorterResponse, error) {
	porter, err := s.repo.Porter.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPorterNotFound
		}
		s.logger.Error("porter lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		porter.Name = *req.Name
	}
	if req.Email != nil {
		porter.Email = *req.Email
	}
	if req.PorterType != nil {
		porter.PorterType = *req.PorterType
	}
	if req.ContractedHoursType != nil {
		porter.ContractedHoursType = *req.ContractedHoursType
	}
	if req.WeeklyContractedHours != nil {
		porter.WeeklyContractedHours = *req.WeeklyContractedHours
	}
	if req.ShiftID != nil {
		if *req.ShiftID == "" {
			porter.ShiftID = nil
		} else {
			porter.ShiftID = req.ShiftID
		}
	}
	if req.PorterOffset != nil {
		porter.PorterOffset = *req.PorterOffset
	}
	if req.RegularDepartmentID != nil {
		if *req.RegularDepartmentID == "" {
			porter.RegularDepartmentID = nil
		} else {
			porter.RegularDepartmentID = req.RegularDepartmentID
		}
	}
	if req.RegularServiceID != nil {
		if *req.RegularServiceID == "" {
			porter.RegularServiceID = nil
		} else {
			porter.RegularServiceID = req.RegularServiceID
		}
	}
	if porter.RegularDepartmentID != nil && porter.RegularServiceID != nil {
		return nil, ErrPorterPostingConflict
	}
	if err := s.checkReferences(ctx, porter.ShiftID, porter.RegularDepartmentID, porter.RegularServiceID); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		porter.IsActive = *req.IsActive
	}

	if err := s.repo.Porter.Update(ctx, porter); err != nil {
		s.logger.Error("porter update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *porterService) Deactivate(ctx context.Context, id string) error {
	porter, err := s.repo.Porter.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPorterNotFound
		}
		s.logger.Error("porter lookup failed", zap.String("id", id), zap.Error(err))
		return err
	}

	porter.IsActive = false
	if err := s.repo.Porter.Update(ctx, porter); err != nil {
		s.logger.Error("porter deactivate failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// SetTempAssignment places the porter on a temporary posting for an
// inclusive date window, replacing any existing window.
func (s *porterService) SetTempAssignment(ctx context.Context, id string, req *dto.SetTempAssignmentRequest) (*dto.PorterResponse, error) {
	porter, err := s.repo.Porter.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPorterNotFound
		}
		s.logger.Error("porter lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if (req.DepartmentID == nil) == (req.ServiceID == nil) {
		return nil, ErrTempLocationRequired
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, err
	}
	start, end = rota.TruncateToDay(start), rota.TruncateToDay(end)
	if end.Before(start) {
		return nil, ErrTempWindowInvalid
	}

	if req.DepartmentID != nil {
		if _, err := s.repo.Department.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrDepartmentNotFound
			}
			return nil, err
		}
	}
	if req.ServiceID != nil {
		if _, err := s.repo.Service.GetByID(ctx, *req.ServiceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrServiceNotFound
			}
			return nil, err
		}
	}

	porter.TempDepartmentID = req.DepartmentID
	porter.TempServiceID = req.ServiceID
	porter.TempAssignmentStart = &start
	porter.TempAssignmentEnd = &end

	if err := s.repo.Porter.Update(ctx, porter); err != nil {
		s.logger.Error("temp assignment update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// ClearTempAssignment removes the porter's temporary posting.
func (s *porterService) ClearTempAssignment(ctx context.Context, id string) (*dto.PorterResponse, error) {
	porter, err := s.repo.Porter.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPorterNotFound
		}
		s.logger.Error("porter lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	porter.TempDepartmentID = nil
	porter.TempServiceID = nil
	porter.TempAssignmentStart = nil
	porter.TempAssignmentEnd = nil

	if err := s.repo.Porter.Update(ctx, porter); err != nil {
		s.logger.Error("temp assignment clear failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// ReplaceHours swaps the porter's custom hours wholesale. An empty list
// clears them.
func (s *porterService) ReplaceHours(ctx context.Context, id string, req *dto.ReplacePorterHoursRequest) (*dto.PorterResponse, error) {
	if _, err := s.repo.Porter.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPorterNotFound
		}
		s.logger.Error("porter lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	seen := make(map[int]bool, len(req.Hours))
	hours := make([]model.PorterHours, 0, len(req.Hours))
	for _, h := range req.Hours {
		if seen[h.DayOfWeek] {
			return nil, ErrDuplicateCustomHoursDay
		}
		seen[h.DayOfWeek] = true
		hours = append(hours, model.PorterHours{
			PorterID:  id,
			DayOfWeek: h.DayOfWeek,
			StartsAt:  h.StartsAt,
			EndsAt:    h.EndsAt,
		})
	}

	if err := s.repo.Porter.ReplaceHours(ctx, id, hours); err != nil {
		s.logger.Error("custom hours replace failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// checkReferences verifies the shift and posting foreign keys exist.
func (s *porterService) checkReferences(ctx context.Context, shiftID, departmentID, serviceID *string) error {
	if shiftID != nil {
		if _, err := s.repo.Shift.GetByID(ctx, *shiftID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrShiftNotFound
			}
			return err
		}
	}
	if departmentID != nil {
		if _, err := s.repo.Department.GetByID(ctx, *departmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDepartmentNotFound
			}
			return err
		}
	}
	if serviceID != nil {
		if _, err := s.repo.Service.GetByID(ctx, *serviceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrServiceNotFound
			}
			return err
		}
	}
	return nil
}

// ── mapping helpers ──

func toPorterResponse(p *model.Porter) *dto.PorterResponse {
	resp := &dto.PorterResponse{
		ID:                    p.PorterID,
		Name:                  p.Name,
		Email:                 p.Email,
		PorterType:            p.PorterType,
		ContractedHoursType:   p.ContractedHoursType,
		WeeklyContractedHours: p.WeeklyContractedHours,
		PorterOffset:          p.PorterOffset,
		IsActive:              p.IsActive,
		CreatedAt:             p.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:             p.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if p.Shift != nil {
		resp.Shift = &dto.ShiftBrief{
			ID:       p.Shift.ShiftID,
			Name:     p.Shift.Name,
			StartsAt: p.Shift.StartsAt,
			EndsAt:   p.Shift.EndsAt,
		}
	}
	if p.RegularDepartment != nil {
		resp.RegularDepartment = &dto.DepartmentBrief{ID: p.RegularDepartment.DepartmentID, Name: p.RegularDepartment.Name}
	}
	if p.RegularService != nil {
		resp.RegularService = &dto.ServiceBrief{ID: p.RegularService.ServiceID, Name: p.RegularService.Name}
	}
	if p.TempDepartment != nil {
		resp.TempDepartment = &dto.DepartmentBrief{ID: p.TempDepartment.DepartmentID, Name: p.TempDepartment.Name}
	}
	if p.TempService != nil {
		resp.TempService = &dto.ServiceBrief{ID: p.TempService.ServiceID, Name: p.TempService.Name}
	}
	if p.TempAssignmentStart != nil {
		resp.TempAssignmentStart = p.TempAssignmentStart.Format("2006-01-02")
	}
	if p.TempAssignmentEnd != nil {
		resp.TempAssignmentEnd = p.TempAssignmentEnd.Format("2006-01-02")
	}
	for _, h := range p.CustomHours {
		resp.CustomHours = append(resp.CustomHours, dto.PorterHoursEntry{
			DayOfWeek: h.DayOfWeek,
			StartsAt:  h.StartsAt,
			EndsAt:    h.EndsAt,
		})
	}
	return resp
}
