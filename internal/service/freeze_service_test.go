package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"gorm.io/datatypes"

	"github.com/Hypha-Media-UK/rotascope2/internal/model"
)

func setupTestFreezeService() (FreezeService, *mockFrozenScheduleRepo, *mockPorterRepo) {
	repo, _, _, _, porterRepo, frozenRepo := newTestRepository()
	schedule := NewScheduleService(repo, nil, zap.NewNop())
	return NewFreezeService(repo, schedule, zap.NewNop()), frozenRepo, porterRepo
}

func TestFreezeService_Freeze_WritesVersionedSnapshot(t *testing.T) {
	svc, frozenRepo, porterRepo := setupTestFreezeService()
	seedShiftPorter(porterRepo, "p-1", 0)

	resp, err := svc.Freeze(context.Background(), testDate(2025, 1, 3))
	if err != nil {
		t.Fatalf("Freeze should succeed: %v", err)
	}
	if resp.AlreadyFrozen {
		t.Error("first freeze of a date must not report already_frozen")
	}
	if resp.AssignmentRows != 1 {
		t.Errorf("expected 1 denormalized assignment row, got %d", resp.AssignmentRows)
	}

	stored := frozenRepo.snapshots["2025-01-03"]
	if stored == nil {
		t.Fatal("snapshot not persisted")
	}
	var payload frozenPayload
	if err := json.Unmarshal(stored.ScheduleData, &payload); err != nil {
		t.Fatalf("stored payload must be valid JSON: %v", err)
	}
	if payload.SchemaVersion != frozenSchemaVersion {
		t.Errorf("expected schema_version=%d, got %d", frozenSchemaVersion, payload.SchemaVersion)
	}
	if payload.Schedule == nil || len(payload.Schedule.ActiveShifts) != 1 {
		t.Error("payload must embed the assembled schedule")
	}
}

func TestFreezeService_Freeze_IdempotentPerDate(t *testing.T) {
	svc, frozenRepo, porterRepo := setupTestFreezeService()
	seedShiftPorter(porterRepo, "p-1", 0)

	first, err := svc.Freeze(context.Background(), testDate(2025, 1, 3))
	if err != nil {
		t.Fatalf("first Freeze should succeed: %v", err)
	}

	// The roster changes between the two calls; the snapshot must not.
	seedShiftPorter(porterRepo, "p-2", 0)

	second, err := svc.Freeze(context.Background(), testDate(2025, 1, 3))
	if err != nil {
		t.Fatalf("second Freeze should succeed: %v", err)
	}
	if !second.AlreadyFrozen {
		t.Error("second freeze of the same date must report already_frozen")
	}
	if second.ID != first.ID {
		t.Error("second freeze must reference the original snapshot")
	}

	rows := frozenRepo.assignments[first.ID]
	if len(rows) != 1 {
		t.Errorf("original snapshot must be untouched, got %d rows", len(rows))
	}
}

func TestFreezeService_Freeze_FailureLeavesNothingBehind(t *testing.T) {
	svc, frozenRepo, porterRepo := setupTestFreezeService()
	seedShiftPorter(porterRepo, "p-1", 0)
	frozenRepo.failCreate = true

	if _, err := svc.Freeze(context.Background(), testDate(2025, 1, 3)); err == nil {
		t.Fatal("Freeze must surface the write failure")
	}
	if len(frozenRepo.snapshots) != 0 {
		t.Error("a failed freeze must not leave a partial snapshot")
	}

	// The date stays freezable after the failure clears.
	frozenRepo.failCreate = false
	resp, err := svc.Freeze(context.Background(), testDate(2025, 1, 3))
	if err != nil {
		t.Fatalf("retry after failure should succeed: %v", err)
	}
	if resp.AlreadyFrozen {
		t.Error("retry must perform a fresh freeze, not find a phantom snapshot")
	}
}

func TestFreezeService_GetFrozen_NotFound(t *testing.T) {
	svc, _, _ := setupTestFreezeService()

	if _, err := svc.GetFrozen(context.Background(), testDate(2025, 1, 3)); !errors.Is(err, ErrFrozenScheduleNotFound) {
		t.Errorf("expected ErrFrozenScheduleNotFound, got %v", err)
	}
}

func TestFreezeService_GetFrozen_RejectsUnknownSchemaVersion(t *testing.T) {
	svc, frozenRepo, _ := setupTestFreezeService()

	raw, _ := json.Marshal(map[string]interface{}{"schema_version": 99})
	frozenRepo.snapshots["2025-01-03"] = &model.FrozenSchedule{
		FrozenScheduleID: "frozen-2025-01-03",
		Date:             testDate(2025, 1, 3),
		ScheduleData:     datatypes.JSON(raw),
		FrozenAt:         time.Now().UTC(),
	}

	if _, err := svc.GetFrozen(context.Background(), testDate(2025, 1, 3)); !errors.Is(err, ErrFrozenSchemaVersion) {
		t.Errorf("expected ErrFrozenSchemaVersion, got %v", err)
	}
}

func TestFreezeService_GetFrozenAssignments_RoundTrip(t *testing.T) {
	svc, _, porterRepo := setupTestFreezeService()
	seedShiftPorter(porterRepo, "p-1", 0)
	seedShiftPorter(porterRepo, "p-2", 2)

	if _, err := svc.Freeze(context.Background(), testDate(2025, 1, 3)); err != nil {
		t.Fatalf("Freeze should succeed: %v", err)
	}

	rows, err := svc.GetFrozenAssignments(context.Background(), testDate(2025, 1, 3))
	if err != nil {
		t.Fatalf("GetFrozenAssignments should succeed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 assignment rows, got %d", len(rows))
	}
	for _, row := range rows {
		if row.ShiftID != "shift-a" {
			t.Errorf("expected shift-a rows, got %s", row.ShiftID)
		}
	}
}
