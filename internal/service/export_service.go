package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Hypha-Media-UK/rotascope2/internal/model"
	"github.com/Hypha-Media-UK/rotascope2/internal/repository"
	"github.com/Hypha-Media-UK/rotascope2/internal/rota"
)

// ── export business errors ──

var (
	ErrExportEmptySchedule = errors.New("no active shifts on that date, nothing to export")
	ErrExportGenerateFail  = errors.New("generating the export file failed")
)

// defaultRotaHorizonDays is the iCalendar window when the request does
// not name one.
const defaultRotaHorizonDays = 28

// ExportService produces downloadable views of the computed schedule:
// an XLSX day sheet and a per-porter iCalendar rota. Both return a
// buffer plus a suggested filename; the handler sets the HTTP headers.
type ExportService interface {
	ExportDaySheet(ctx context.Context, date time.Time) (*bytes.Buffer, string, error)
	ExportPorterRota(ctx context.Context, porterID string, from time.Time, days int) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo     *repository.Repository
	schedule ScheduleService
	logger   *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, schedule ScheduleService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, schedule: schedule, logger: logger}
}

// ExportDaySheet renders one date's schedule as a spreadsheet: one
// block per active shift, one row per assigned porter.
func (s *exportService) ExportDaySheet(ctx context.Context, date time.Time) (*bytes.Buffer, string, error) {
	day := rota.TruncateToDay(date)

	schedule, err := s.schedule.BuildSchedule(ctx, day)
	if err != nil {
		return nil, "", err
	}
	if len(schedule.ActiveShifts) == 0 {
		return nil, "", ErrExportEmptySchedule
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Day Sheet"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "B", 14)
	f.SetColWidth(sheetName, "C", "C", 10)
	f.SetColWidth(sheetName, "D", "D", 28)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheetName, "A1", fmt.Sprintf("Porter day sheet - %s", day.Format("Monday 2 January 2006")))
	f.MergeCell(sheetName, "A1", "D1")
	f.SetCellStyle(sheetName, "A1", "A1", headerStyle)

	row := 3
	for _, roster := range schedule.ActiveShifts {
		f.SetCellValue(sheetName, cell("A", row), roster.Shift.Name)
		f.SetCellValue(sheetName, cell("B", row), fmt.Sprintf("%s-%s", roster.Shift.StartsAt, roster.Shift.EndsAt))
		f.SetCellStyle(sheetName, cell("A", row), cell("D", row), headerStyle)
		row++

		f.SetCellValue(sheetName, cell("A", row), "Porter")
		f.SetCellValue(sheetName, cell("B", row), "Status")
		f.SetCellValue(sheetName, cell("C", row), "On duty")
		f.SetCellValue(sheetName, cell("D", row), "Temporary posting")
		row++

		for _, ap := range roster.AssignedPorters {
			f.SetCellValue(sheetName, cell("A", row), ap.Porter.Name)
			if ap.IsTemporarilyAssigned {
				f.SetCellValue(sheetName, cell("B", row), "Reassigned")
			} else {
				f.SetCellValue(sheetName, cell("B", row), "Rostered")
			}
			if ap.IsActiveToday {
				f.SetCellValue(sheetName, cell("C", row), "Yes")
			} else {
				f.SetCellValue(sheetName, cell("C", row), "No")
			}
			if ap.TempAssignmentLocation != "" {
				f.SetCellValue(sheetName, cell("D", row), ap.TempAssignmentLocation)
			} else {
				f.SetCellValue(sheetName, cell("D", row), "-")
			}
			row++
		}
		row++ // blank row between shift blocks
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("day sheet write failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("day_sheet_%s.xlsx", day.Format("2006-01-02"))
	return buf, filename, nil
}

// ExportPorterRota renders one porter's resolved availability over a
// date window as an iCalendar feed, one event per working day.
func (s *exportService) ExportPorterRota(ctx context.Context, porterID string, from time.Time, days int) (*bytes.Buffer, string, error) {
	porter, err := s.repo.Porter.GetByID(ctx, porterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrPorterNotFound
		}
		s.logger.Error("rota export porter lookup failed", zap.String("id", porterID), zap.Error(err))
		return nil, "", err
	}

	if days <= 0 {
		days = defaultRotaHorizonDays
	}
	start := rota.TruncateToDay(from)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Rotascope//Porter Rota//EN")

	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		rec := rota.ResolveAvailability(porter, day, hoursForWeekday(porter.CustomHours, day))
		if rec == nil || isOffDayFallThrough(porter, rec) {
			continue
		}

		event := cal.AddEvent(uuid.NewString() + "@rotascope")
		event.SetDtStampTime(time.Now().UTC())

		summary := porter.Name
		if rec.Location.Name != "" {
			summary += " - " + rec.Location.Name
		}
		event.SetSummary(summary)

		if rec.WorkingHours != nil {
			eventStart, eventEnd, err := workingWindow(day, rec.WorkingHours)
			if err != nil {
				s.logger.Warn("rota export skipping malformed working hours",
					zap.String("porter_id", porterID),
					zap.String("date", day.Format("2006-01-02")))
				continue
			}
			event.SetStartAt(eventStart)
			event.SetEndAt(eventEnd)
		} else {
			// All-day event when no explicit working hours apply.
			event.SetAllDayStartAt(day)
			event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		}

		if rec.Location.AssignmentType == rota.AssignmentTemporary {
			event.SetDescription("Temporary reassignment")
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("rota_%s_%s.ics", porterID, start.Format("2006-01-02"))
	return buf, filename, nil
}

// isOffDayFallThrough reports a record that only restates a shift
// porter's permanent posting on a day the cycle has them off. Those are
// not working days, so the rota emits no event for them. Porters without
// a shift pattern and temporary reassignments are unaffected.
func isOffDayFallThrough(porter *model.Porter, rec *rota.AvailabilityRecord) bool {
	return porter.ShiftID != nil &&
		rec.AvailabilityType == rota.AvailabilityRegularAssignment &&
		rec.Location.AssignmentType == rota.AssignmentRegular
}

// workingWindow converts "HH:MM"/"HH:MM:SS" bounds on a day into
// instants. An end at or before the start rolls to the next day
// (overnight shifts).
func workingWindow(day time.Time, hours *rota.WorkingHours) (time.Time, time.Time, error) {
	start, err := atTimeOfDay(day, hours.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := atTimeOfDay(day, hours.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, nil
}

func atTimeOfDay(day time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		t, err = time.Parse("15:04:05", hhmm)
		if err != nil {
			return time.Time{}, err
		}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), t.Second(), 0, day.Location()), nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
