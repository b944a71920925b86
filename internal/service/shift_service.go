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

// ── shift business errors ──

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftTypeNotFound  = errors.New("shift type not found")
	ErrShiftHasPorters    = errors.New("shift has porters assigned and cannot be deactivated")
	ErrShiftTypeInUse     = errors.New("shift type is referenced by shifts and cannot be deactivated")
	ErrInvalidCycleLength = errors.New("days_on and days_off must both be at least 1")
)

// ShiftService manages shift types and repeating shift patterns.
type ShiftService interface {
	CreateType(ctx context.Context, req *dto.CreateShiftTypeRequest) (*dto.ShiftTypeResponse, error)
	GetType(ctx context.Context, id string) (*dto.ShiftTypeResponse, error)
	ListTypes(ctx context.Context) ([]dto.ShiftTypeResponse, error)
	UpdateType(ctx context.Context, id string, req *dto.UpdateShiftTypeRequest) (*dto.ShiftTypeResponse, error)
	DeactivateType(ctx context.Context, id string) error

	Create(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ShiftResponse, error)
	List(ctx context.Context, req *dto.ShiftListRequest) ([]dto.ShiftResponse, error)
	ListActive(ctx context.Context, date time.Time) ([]dto.ShiftResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error)
	Deactivate(ctx context.Context, id string) error
}

type shiftService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewShiftService creates a ShiftService.
func NewShiftService(repo *repository.Repository, logger *zap.Logger) ShiftService {
	return &shiftService{repo: repo, logger: logger}
}

// ── shift types ──

func (s *shiftService) CreateType(ctx context.Context, req *dto.CreateShiftTypeRequest) (*dto.ShiftTypeResponse, error) {
	st := &model.ShiftType{
		Name:        req.Name,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		DisplayType: req.DisplayType,
		Color:       req.Color,
		IsActive:    true,
	}
	if err := s.repo.ShiftType.Create(ctx, st); err != nil {
		s.logger.Error("shift type create failed", zap.Error(err))
		return nil, err
	}
	return toShiftTypeResponse(st), nil
}

func (s *shiftService) GetType(ctx context.Context, id string) (*dto.ShiftTypeResponse, error) {
	st, err := s.repo.ShiftType.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftTypeNotFound
		}
		s.logger.Error("shift type lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toShiftTypeResponse(st), nil
}

func (s *shiftService) ListTypes(ctx context.Context) ([]dto.ShiftTypeResponse, error) {
	types, err := s.repo.ShiftType.List(ctx)
	if err != nil {
		s.logger.Error("shift type list failed", zap.Error(err))
		return nil, err
	}
	result := make([]dto.ShiftTypeResponse, 0, len(types))
	for i := range types {
		result = append(result, *toShiftTypeResponse(&types[i]))
	}
	return result, nil
}

func (s *shiftService) UpdateType(ctx context.Context, id string, req *dto.UpdateShiftTypeRequest) (*dto.ShiftTypeResponse, error) {
	st, err := s.repo.ShiftType.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftTypeNotFound
		}
		s.logger.Error("shift type lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.StartsAt != nil {
		st.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		st.EndsAt = *req.EndsAt
	}
	if req.DisplayType != nil {
		st.DisplayType = *req.DisplayType
	}
	if req.Color != nil {
		st.Color = *req.Color
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}

	if err := s.repo.ShiftType.Update(ctx, st); err != nil {
		s.logger.Error("shift type update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toShiftTypeResponse(st), nil
}

func (s *shiftService) DeactivateType(ctx context.Context, id string) error {
	st, err := s.repo.ShiftType.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShiftTypeNotFound
		}
		s.logger.Error("shift type lookup failed", zap.String("id", id), zap.Error(err))
		return err
	}

	count, err := s.repo.ShiftType.CountShifts(ctx, st.ShiftTypeID)
	if err != nil {
		s.logger.Error("shift type usage count failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrShiftTypeInUse
	}

	st.IsActive = false
	if err := s.repo.ShiftType.Update(ctx, st); err != nil {
		s.logger.Error("shift type deactivate failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── shifts ──

func (s *shiftService) Create(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	if req.DaysOn < 1 || req.DaysOff < 1 {
		return nil, ErrInvalidCycleLength
	}

	var shiftTypeID *string
	if req.ShiftTypeID != "" {
		if _, err := s.repo.ShiftType.GetByID(ctx, req.ShiftTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrShiftTypeNotFound
			}
			return nil, err
		}
		shiftTypeID = &req.ShiftTypeID
	}

	groundZero, err := time.Parse("2006-01-02", req.GroundZeroDate)
	if err != nil {
		return nil, err
	}

	shift := &model.Shift{
		Name:            req.Name,
		ShiftTypeID:     shiftTypeID,
		ShiftIdentifier: req.ShiftIdentifier,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		DaysOn:          req.DaysOn,
		DaysOff:         req.DaysOff,
		ShiftOffset:     req.ShiftOffset,
		GroundZeroDate:  rota.TruncateToDay(groundZero),
		IsActive:        true,
	}
	if err := s.repo.Shift.Create(ctx, shift); err != nil {
		s.logger.Error("shift create failed", zap.Error(err))
		return nil, err
	}
	return toShiftResponse(shift), nil
}

func (s *shiftService) GetByID(ctx context.Context, id string) (*dto.ShiftResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("shift lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toShiftResponse(shift), nil
}

func (s *shiftService) List(ctx context.Context, req *dto.ShiftListRequest) ([]dto.ShiftResponse, error) {
	var (
		shifts []model.Shift
		err    error
	)
	if req.IncludeInactive {
		shifts, err = s.repo.Shift.ListAll(ctx)
	} else {
		shifts, err = s.repo.Shift.List(ctx)
	}
	if err != nil {
		s.logger.Error("shift list failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		result = append(result, *toShiftResponse(&shifts[i]))
	}
	return result, nil
}

// ListActive returns the shifts whose repeating cycle is in an on-day
// on the given date.
func (s *shiftService) ListActive(ctx context.Context, date time.Time) ([]dto.ShiftResponse, error) {
	shifts, err := s.repo.Shift.List(ctx)
	if err != nil {
		s.logger.Error("shift list failed", zap.Error(err))
		return nil, err
	}

	day := rota.TruncateToDay(date)
	result := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		if rota.IsShiftActive(day, &shifts[i]) {
			result = append(result, *toShiftResponse(&shifts[i]))
		}
	}
	return result, nil
}

func (s *shiftService) Update(ctx context.Context, id string, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("shift lookup failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		shift.Name = *req.Name
	}
	if req.ShiftTypeID != nil {
		if *req.ShiftTypeID == "" {
			shift.ShiftTypeID = nil
		} else {
			if _, err := s.repo.ShiftType.GetByID(ctx, *req.ShiftTypeID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, ErrShiftTypeNotFound
				}
				return nil, err
			}
			shift.ShiftTypeID = req.ShiftTypeID
		}
	}
	if req.ShiftIdentifier != nil {
		shift.ShiftIdentifier = *req.ShiftIdentifier
	}
	if req.StartsAt != nil {
		shift.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		shift.EndsAt = *req.EndsAt
	}
	if req.DaysOn != nil {
		shift.DaysOn = *req.DaysOn
	}
	if req.DaysOff != nil {
		shift.DaysOff = *req.DaysOff
	}
	if shift.DaysOn < 1 || shift.DaysOff < 1 {
		return nil, ErrInvalidCycleLength
	}
	if req.ShiftOffset != nil {
		shift.ShiftOffset = *req.ShiftOffset
	}
	if req.GroundZeroDate != nil {
		groundZero, err := time.Parse("2006-01-02", *req.GroundZeroDate)
		if err != nil {
			return nil, err
		}
		shift.GroundZeroDate = rota.TruncateToDay(groundZero)
	}
	if req.IsActive != nil {
		shift.IsActive = *req.IsActive
	}

	if err := s.repo.Shift.Update(ctx, shift); err != nil {
		s.logger.Error("shift update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toShiftResponse(shift), nil
}

func (s *shiftService) Deactivate(ctx context.Context, id string) error {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShiftNotFound
		}
		s.logger.Error("shift lookup failed", zap.String("id", id), zap.Error(err))
		return err
	}

	count, err := s.repo.Shift.CountPorters(ctx, shift.ShiftID)
	if err != nil {
		s.logger.Error("shift porter count failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if count > 0 {
		return ErrShiftHasPorters
	}

	shift.IsActive = false
	if err := s.repo.Shift.Update(ctx, shift); err != nil {
		s.logger.Error("shift deactivate failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── mapping helpers ──

func toShiftTypeResponse(st *model.ShiftType) *dto.ShiftTypeResponse {
	return &dto.ShiftTypeResponse{
		ID:          st.ShiftTypeID,
		Name:        st.Name,
		StartsAt:    st.StartsAt,
		EndsAt:      st.EndsAt,
		DisplayType: st.DisplayType,
		Color:       st.Color,
		IsActive:    st.IsActive,
		CreatedAt:   st.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   st.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func toShiftResponse(shift *model.Shift) *dto.ShiftResponse {
	resp := &dto.ShiftResponse{
		ID:              shift.ShiftID,
		Name:            shift.Name,
		ShiftIdentifier: shift.ShiftIdentifier,
		StartsAt:        shift.StartsAt,
		EndsAt:          shift.EndsAt,
		DaysOn:          shift.DaysOn,
		DaysOff:         shift.DaysOff,
		ShiftOffset:     shift.ShiftOffset,
		GroundZeroDate:  shift.GroundZeroDate.Format("2006-01-02"),
		IsActive:        shift.IsActive,
		CreatedAt:       shift.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:       shift.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if shift.ShiftType != nil {
		resp.ShiftType = toShiftTypeResponse(shift.ShiftType)
	}
	return resp
}
