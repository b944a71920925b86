package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Hypha-Media-UK/rotascope2/internal/dto"
	"github.com/Hypha-Media-UK/rotascope2/internal/model"
	"github.com/Hypha-Media-UK/rotascope2/internal/repository"
	"github.com/Hypha-Media-UK/rotascope2/internal/rota"
)

// frozenSchemaVersion tags every snapshot payload so readers can detect
// a layout they do not understand instead of misparsing it.
const frozenSchemaVersion = 1

// ── freeze business errors ──

var (
	ErrFrozenScheduleNotFound = errors.New("no frozen schedule exists for that date")
	ErrFrozenSchemaVersion    = errors.New("frozen schedule payload has an unsupported schema version")
)

// frozenPayload is the versioned JSON stored in frozen_schedules.
type frozenPayload struct {
	SchemaVersion int            `json:"schema_version"`
	Schedule      *rota.Schedule `json:"schedule"`
}

// FreezeService takes and serves immutable daily schedule snapshots.
type FreezeService interface {
	// Freeze snapshots the date's computed schedule. Freezing an
	// already-frozen date is a no-op reported via AlreadyFrozen.
	Freeze(ctx context.Context, date time.Time) (*dto.FreezeResponse, error)
	// GetFrozen returns the stored snapshot for a date.
	GetFrozen(ctx context.Context, date time.Time) (*dto.FrozenScheduleResponse, error)
	// GetFrozenAssignments returns the denormalized rows for a date's
	// snapshot.
	GetFrozenAssignments(ctx context.Context, date time.Time) ([]dto.FrozenAssignmentResponse, error)
}

type freezeService struct {
	repo     *repository.Repository
	schedule ScheduleService
	logger   *zap.Logger
}

// NewFreezeService creates a FreezeService.
func NewFreezeService(repo *repository.Repository, schedule ScheduleService, logger *zap.Logger) FreezeService {
	return &freezeService{repo: repo, schedule: schedule, logger: logger}
}

func (s *freezeService) Freeze(ctx context.Context, date time.Time) (*dto.FreezeResponse, error) {
	day := rota.TruncateToDay(date)

	existing, err := s.repo.FrozenSchedule.GetByDate(ctx, day)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("frozen schedule lookup failed", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		s.logger.Info("date already frozen, skipping",
			zap.String("date", day.Format("2006-01-02")))
		return &dto.FreezeResponse{
			ID:            existing.FrozenScheduleID,
			Date:          day.Format("2006-01-02"),
			FrozenAt:      existing.FrozenAt.Format(time.RFC3339),
			AlreadyFrozen: true,
		}, nil
	}

	// The snapshot must reflect the database, not a possibly stale
	// cached view.
	schedule, err := s.schedule.BuildSchedule(ctx, day)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(frozenPayload{SchemaVersion: frozenSchemaVersion, Schedule: schedule})
	if err != nil {
		s.logger.Error("frozen payload marshal failed", zap.Error(err))
		return nil, err
	}

	snapshot := &model.FrozenSchedule{
		Date:         day,
		ScheduleData: datatypes.JSON(raw),
		FrozenAt:     time.Now().UTC(),
	}
	assignments := flattenAssignments(schedule)

	if err := s.repo.FrozenSchedule.CreateSnapshot(ctx, snapshot, assignments); err != nil {
		s.logger.Error("frozen snapshot write failed",
			zap.String("date", day.Format("2006-01-02")), zap.Error(err))
		return nil, err
	}

	// Drop any live cached view older than the snapshot.
	s.schedule.InvalidateCache(ctx, day)

	s.logger.Info("schedule frozen",
		zap.String("date", day.Format("2006-01-02")),
		zap.Int("active_shifts", len(schedule.ActiveShifts)),
		zap.Int("assignment_rows", len(assignments)))

	return &dto.FreezeResponse{
		ID:             snapshot.FrozenScheduleID,
		Date:           day.Format("2006-01-02"),
		FrozenAt:       snapshot.FrozenAt.Format(time.RFC3339),
		AssignmentRows: len(assignments),
	}, nil
}

func (s *freezeService) GetFrozen(ctx context.Context, date time.Time) (*dto.FrozenScheduleResponse, error) {
	day := rota.TruncateToDay(date)

	snapshot, err := s.repo.FrozenSchedule.GetByDate(ctx, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFrozenScheduleNotFound
		}
		s.logger.Error("frozen schedule lookup failed", zap.Error(err))
		return nil, err
	}

	var payload frozenPayload
	if err := json.Unmarshal(snapshot.ScheduleData, &payload); err != nil {
		s.logger.Error("frozen payload unreadable",
			zap.String("id", snapshot.FrozenScheduleID), zap.Error(err))
		return nil, ErrFrozenSchemaVersion
	}
	if payload.SchemaVersion != frozenSchemaVersion {
		s.logger.Error("frozen payload schema mismatch",
			zap.String("id", snapshot.FrozenScheduleID),
			zap.Int("got", payload.SchemaVersion),
			zap.Int("want", frozenSchemaVersion))
		return nil, ErrFrozenSchemaVersion
	}

	return &dto.FrozenScheduleResponse{
		ID:           snapshot.FrozenScheduleID,
		Date:         day.Format("2006-01-02"),
		FrozenAt:     snapshot.FrozenAt.Format(time.RFC3339),
		ScheduleData: json.RawMessage(snapshot.ScheduleData),
	}, nil
}

func (s *freezeService) GetFrozenAssignments(ctx context.Context, date time.Time) ([]dto.FrozenAssignmentResponse, error) {
	day := rota.TruncateToDay(date)

	snapshot, err := s.repo.FrozenSchedule.GetByDate(ctx, day)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFrozenScheduleNotFound
		}
		s.logger.Error("frozen schedule lookup failed", zap.Error(err))
		return nil, err
	}

	rows, err := s.repo.FrozenSchedule.ListAssignments(ctx, snapshot.FrozenScheduleID)
	if err != nil {
		s.logger.Error("frozen assignment list failed",
			zap.String("id", snapshot.FrozenScheduleID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.FrozenAssignmentResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.FrozenAssignmentResponse{
			PorterID:               row.PorterID,
			ShiftID:                row.ShiftID,
			IsActiveToday:          row.IsActiveToday,
			IsTemporarilyAssigned:  row.IsTemporarilyAssigned,
			TempAssignmentLocation: row.TempAssignmentLocation,
		})
	}
	return result, nil
}

// flattenAssignments denormalizes a schedule into per-porter rows.
func flattenAssignments(schedule *rota.Schedule) []model.FrozenPorterAssignment {
	var rows []model.FrozenPorterAssignment
	for _, roster := range schedule.ActiveShifts {
		for _, ap := range roster.AssignedPorters {
			rows = append(rows, model.FrozenPorterAssignment{
				PorterID:               ap.Porter.PorterID,
				ShiftID:                roster.Shift.ShiftID,
				IsActiveToday:          ap.IsActiveToday,
				IsTemporarilyAssigned:  ap.IsTemporarilyAssigned,
				TempAssignmentLocation: ap.TempAssignmentLocation,
			})
		}
	}
	return rows
}
