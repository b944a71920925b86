package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Hypha-Media-UK/rotascope2/internal/dto"
	"github.com/Hypha-Media-UK/rotascope2/internal/repository"
)

func setupTestPorterService() (PorterService, *repository.Repository, *mockPorterRepo) {
	repo, _, _, _, porterRepo, _ := newTestRepository()
	return NewPorterService(repo, zap.NewNop()), repo, porterRepo
}

func strRef(s string) *string { return &s }

func createTestPorter(t *testing.T, svc PorterService) *dto.PorterResponse {
	t.Helper()
	shiftID := "shift-a"
	deptID := "dept-ed"
	p, err := svc.Create(context.Background(), &dto.CreatePorterRequest{
		Name:                "Alan Pritchard",
		PorterType:          "PORTER",
		ContractedHoursType: "SHIFT",
		ShiftID:             &shiftID,
		RegularDepartmentID: &deptID,
	})
	if err != nil {
		t.Fatalf("porter fixture create failed: %v", err)
	}
	return p
}

// ── Create ──

func TestPorterService_Create_LoadsAssociations(t *testing.T) {
	svc, _, _ := setupTestPorterService()

	p := createTestPorter(t, svc)
	if p.Shift == nil || p.Shift.ID != "shift-a" {
		t.Errorf("create response must carry the shift association, got %+v", p.Shift)
	}
	if !p.IsActive {
		t.Error("new porters must start active")
	}
}

func TestPorterService_Create_RejectsDualPosting(t *testing.T) {
	svc, _, _ := setupTestPorterService()

	_, err := svc.Create(context.Background(), &dto.CreatePorterRequest{
		Name:                "Dual Posting",
		PorterType:          "PORTER",
		ContractedHoursType: "SHIFT",
		RegularDepartmentID: strRef("dept-ed"),
		RegularServiceID:    strRef("svc-post"),
	})
	if !errors.Is(err, ErrPorterPostingConflict) {
		t.Errorf("expected ErrPorterPostingConflict, got %v", err)
	}
}

func TestPorterService_Create_RejectsUnknownShift(t *testing.T) {
	svc, _, _ := setupTestPorterService()

	_, err := svc.Create(context.Background(), &dto.CreatePorterRequest{
		Name:                "Ghost Shift",
		PorterType:          "PORTER",
		ContractedHoursType: "SHIFT",
		ShiftID:             strRef("shift-missing"),
	})
	if !errors.Is(err, ErrShiftNotFound) {
		t.Errorf("expected ErrShiftNotFound, got %v", err)
	}
}

// ── temporary assignment ──

func TestPorterService_SetTempAssignment_Success(t *testing.T) {
	svc, _, porterRepo := setupTestPorterService()
	p := createTestPorter(t, svc)

	resp, err := svc.SetTempAssignment(context.Background(), p.ID, &dto.SetTempAssignmentRequest{
		ServiceID: strRef("svc-post"),
		StartDate: "2025-03-10",
		EndDate:   "2025-03-14",
	})
	if err != nil {
		t.Fatalf("SetTempAssignment should succeed: %v", err)
	}
	if resp.TempAssignmentStart != "2025-03-10" || resp.TempAssignmentEnd != "2025-03-14" {
		t.Errorf("window not stored: %s..%s", resp.TempAssignmentStart, resp.TempAssignmentEnd)
	}

	stored := porterRepo.porters[p.ID]
	if stored.TempServiceID == nil || *stored.TempServiceID != "svc-post" {
		t.Error("temp service posting not persisted")
	}
}

func TestPorterService_SetTempAssignment_RequiresExactlyOneLocation(t *testing.T) {
	svc, _, _ := setupTestPorterService()
	p := createTestPorter(t, svc)

	cases := []*dto.SetTempAssignmentRequest{
		{StartDate: "2025-03-10", EndDate: "2025-03-14"}, // neither
		{DepartmentID: strRef("dept-ed"), ServiceID: strRef("svc-post"),
			StartDate: "2025-03-10", EndDate: "2025-03-14"}, // both
	}
	for _, req := range cases {
		if _, err := svc.SetTempAssignment(context.Background(), p.ID, req); !errors.Is(err, ErrTempLocationRequired) {
			t.Errorf("expected ErrTempLocationRequired, got %v", err)
		}
	}
}

func TestPorterService_SetTempAssignment_RejectsInvertedWindow(t *testing.T) {
	svc, _, _ := setupTestPorterService()
	p := createTestPorter(t, svc)

	_, err := svc.SetTempAssignment(context.Background(), p.ID, &dto.SetTempAssignmentRequest{
		DepartmentID: strRef("dept-ed"),
		StartDate:    "2025-03-14",
		EndDate:      "2025-03-10",
	})
	if !errors.Is(err, ErrTempWindowInvalid) {
		t.Errorf("expected ErrTempWindowInvalid, got %v", err)
	}
}

func TestPorterService_ClearTempAssignment(t *testing.T) {
	svc, _, porterRepo := setupTestPorterService()
	p := createTestPorter(t, svc)

	if _, err := svc.SetTempAssignment(context.Background(), p.ID, &dto.SetTempAssignmentRequest{
		DepartmentID: strRef("dept-ed"),
		StartDate:    "2025-03-10",
		EndDate:      "2025-03-14",
	}); err != nil {
		t.Fatalf("fixture temp assignment failed: %v", err)
	}

	resp, err := svc.ClearTempAssignment(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("ClearTempAssignment should succeed: %v", err)
	}
	if resp.TempAssignmentStart != "" || resp.TempDepartment != nil {
		t.Error("temp posting must be fully cleared")
	}
	stored := porterRepo.porters[p.ID]
	if stored.TempDepartmentID != nil || stored.TempAssignmentStart != nil {
		t.Error("cleared window must be persisted as nil")
	}
}

// ── custom hours ──

func TestPorterService_ReplaceHours_Success(t *testing.T) {
	svc, _, porterRepo := setupTestPorterService()
	p := createTestPorter(t, svc)

	resp, err := svc.ReplaceHours(context.Background(), p.ID, &dto.ReplacePorterHoursRequest{
		Hours: []dto.PorterHoursEntry{
			{DayOfWeek: 1, StartsAt: "09:00", EndsAt: "17:00"},
			{DayOfWeek: 3, StartsAt: "09:00", EndsAt: "13:00"},
		},
	})
	if err != nil {
		t.Fatalf("ReplaceHours should succeed: %v", err)
	}
	if len(resp.CustomHours) != 2 {
		t.Errorf("expected 2 custom hour entries back, got %d", len(resp.CustomHours))
	}
	if len(porterRepo.hours[p.ID]) != 2 {
		t.Errorf("expected 2 rows persisted, got %d", len(porterRepo.hours[p.ID]))
	}

	// Replacing again with an empty list clears them.
	resp, err = svc.ReplaceHours(context.Background(), p.ID, &dto.ReplacePorterHoursRequest{})
	if err != nil {
		t.Fatalf("empty ReplaceHours should succeed: %v", err)
	}
	if len(resp.CustomHours) != 0 {
		t.Errorf("expected cleared custom hours, got %d", len(resp.CustomHours))
	}
}

func TestPorterService_ReplaceHours_RejectsDuplicateWeekday(t *testing.T) {
	svc, _, _ := setupTestPorterService()
	p := createTestPorter(t, svc)

	_, err := svc.ReplaceHours(context.Background(), p.ID, &dto.ReplacePorterHoursRequest{
		Hours: []dto.PorterHoursEntry{
			{DayOfWeek: 1, StartsAt: "09:00", EndsAt: "12:00"},
			{DayOfWeek: 1, StartsAt: "13:00", EndsAt: "17:00"},
		},
	})
	if !errors.Is(err, ErrDuplicateCustomHoursDay) {
		t.Errorf("expected ErrDuplicateCustomHoursDay, got %v", err)
	}
}

// ── Deactivate ──

func TestPorterService_Deactivate(t *testing.T) {
	svc, _, porterRepo := setupTestPorterService()
	p := createTestPorter(t, svc)

	if err := svc.Deactivate(context.Background(), p.ID); err != nil {
		t.Fatalf("Deactivate should succeed: %v", err)
	}
	if porterRepo.porters[p.ID].IsActive {
		t.Error("porter should be inactive after Deactivate")
	}

	// Inactive porters drop out of the default list.
	active, err := svc.List(context.Background(), &dto.PorterListRequest{})
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	for _, item := range active {
		if item.ID == p.ID {
			t.Error("deactivated porter must not appear in the active list")
		}
	}
}
