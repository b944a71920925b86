package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Hypha-Media-UK/rotascope2/internal/model"
	"github.com/Hypha-Media-UK/rotascope2/internal/repository"
	"github.com/Hypha-Media-UK/rotascope2/internal/rota"
	"github.com/Hypha-Media-UK/rotascope2/pkg/redis"
)

// scheduleCacheTTL bounds staleness of the per-date schedule cache.
// Any porter or shift edit invalidates the affected date eagerly; the
// TTL is the backstop.
const scheduleCacheTTL = 5 * time.Minute

// ScheduleService computes the per-date schedule view and per-porter
// availability.
type ScheduleService interface {
	// GetSchedule returns the computed schedule for a date, serving from
	// the response cache when possible.
	GetSchedule(ctx context.Context, date time.Time) (*rota.Schedule, error)
	// BuildSchedule computes the schedule directly from the database,
	// bypassing the cache. The freeze job uses this path.
	BuildSchedule(ctx context.Context, date time.Time) (*rota.Schedule, error)
	// GetPorterAvailability resolves one porter's posting for a date.
	// A nil record means the porter is not available that day.
	GetPorterAvailability(ctx context.Context, porterID string, date time.Time) (*rota.AvailabilityRecord, error)
	// ListAvailability resolves every active porter for a date, omitting
	// porters with no posting.
	ListAvailability(ctx context.Context, date time.Time) ([]rota.AvailabilityRecord, error)
	// InvalidateCache drops the cached view for a date after an edit.
	InvalidateCache(ctx context.Context, date time.Time)
}

type scheduleService struct {
	repo   *repository.Repository
	cache  *redis.Client // nil when Redis is unavailable
	logger *zap.Logger
}

// NewScheduleService creates a ScheduleService. cache may be nil, in
// which case every request recomputes from the database.
func NewScheduleService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, cache: cache, logger: logger}
}

func scheduleCacheKey(date time.Time) string {
	return "schedule:" + date.Format("2006-01-02")
}

func (s *scheduleService) GetSchedule(ctx context.Context, date time.Time) (*rota.Schedule, error) {
	day := rota.TruncateToDay(date)

	if s.cache != nil {
		if raw, err := s.cache.GetCache(ctx, scheduleCacheKey(day)); err != nil {
			s.logger.Warn("schedule cache read failed", zap.Error(err))
		} else if raw != "" {
			var cached rota.Schedule
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
			s.logger.Warn("schedule cache entry unreadable, recomputing",
				zap.String("date", day.Format("2006-01-02")))
		}
	}

	schedule, err := s.BuildSchedule(ctx, day)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(schedule); err == nil {
			if err := s.cache.SetCache(ctx, scheduleCacheKey(day), string(raw), scheduleCacheTTL); err != nil {
				s.logger.Warn("schedule cache write failed", zap.Error(err))
			}
		}
	}
	return schedule, nil
}

func (s *scheduleService) BuildSchedule(ctx context.Context, date time.Time) (*rota.Schedule, error) {
	day := rota.TruncateToDay(date)

	departments, err := s.repo.Department.List(ctx)
	if err != nil {
		s.logger.Error("schedule department load failed", zap.Error(err))
		return nil, err
	}
	services, err := s.repo.Service.List(ctx)
	if err != nil {
		s.logger.Error("schedule service load failed", zap.Error(err))
		return nil, err
	}
	shifts, err := s.repo.Shift.List(ctx)
	if err != nil {
		s.logger.Error("schedule shift load failed", zap.Error(err))
		return nil, err
	}
	porters, err := s.repo.Porter.List(ctx)
	if err != nil {
		s.logger.Error("schedule porter load failed", zap.Error(err))
		return nil, err
	}

	return rota.AssembleSchedule(day, departments, services, shifts, porters), nil
}

func (s *scheduleService) GetPorterAvailability(ctx context.Context, porterID string, date time.Time) (*rota.AvailabilityRecord, error) {
	porter, err := s.repo.Porter.GetByID(ctx, porterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPorterNotFound
		}
		s.logger.Error("availability porter lookup failed", zap.String("id", porterID), zap.Error(err))
		return nil, err
	}

	day := rota.TruncateToDay(date)
	return rota.ResolveAvailability(porter, day, hoursForWeekday(porter.CustomHours, day)), nil
}

func (s *scheduleService) ListAvailability(ctx context.Context, date time.Time) ([]rota.AvailabilityRecord, error) {
	porters, err := s.repo.Porter.List(ctx)
	if err != nil {
		s.logger.Error("availability porter list failed", zap.Error(err))
		return nil, err
	}

	day := rota.TruncateToDay(date)
	records := make([]rota.AvailabilityRecord, 0, len(porters))
	for i := range porters {
		p := &porters[i]
		if rec := rota.ResolveAvailability(p, day, hoursForWeekday(p.CustomHours, day)); rec != nil {
			records = append(records, *rec)
		}
	}
	return records, nil
}

func (s *scheduleService) InvalidateCache(ctx context.Context, date time.Time) {
	if s.cache == nil {
		return
	}
	key := scheduleCacheKey(rota.TruncateToDay(date))
	if err := s.cache.DeleteCache(ctx, key); err != nil {
		s.logger.Warn("schedule cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

// hoursForWeekday picks the custom-hours entry for the date's weekday.
func hoursForWeekday(hours []model.PorterHours, date time.Time) *model.PorterHours {
	weekday := int(date.Weekday())
	for i := range hours {
		if hours[i].DayOfWeek == weekday {
			return &hours[i]
		}
	}
	return nil
}
