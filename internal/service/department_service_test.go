package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Hypha-Media-UK/rotascope2/internal/dto"
	"github.com/Hypha-Media-UK/rotascope2/internal/model"
	"github.com/Hypha-Media-UK/rotascope2/internal/repository"
)

// ── test helpers ──

func newTestRepository() (*repository.Repository, *mockDepartmentRepo, *mockServiceRepo, *mockShiftRepo, *mockPorterRepo, *mockFrozenScheduleRepo) {
	deptRepo := newMockDepartmentRepo()
	svcRepo := newMockServiceRepo()
	shiftRepo := newMockShiftRepo()
	porterRepo := newMockPorterRepo(shiftRepo)
	frozenRepo := newMockFrozenScheduleRepo()
	repo := &repository.Repository{
		Department:     deptRepo,
		Service:        svcRepo,
		ShiftType:      newMockShiftTypeRepo(),
		Shift:          shiftRepo,
		Porter:         porterRepo,
		FrozenSchedule: frozenRepo,
	}
	return repo, deptRepo, svcRepo, shiftRepo, porterRepo, frozenRepo
}

func setupTestDepartmentService() (DepartmentService, *mockDepartmentRepo) {
	repo, deptRepo, _, _, _, _ := newTestRepository()
	return NewDepartmentService(repo, zap.NewNop()), deptRepo
}

// ── Create ──

func TestDepartmentService_Create_Success(t *testing.T) {
	svc, _ := setupTestDepartmentService()

	req := &dto.CreateDepartmentRequest{
		Name:                 "Theatres",
		Is247:                true,
		PortersRequiredDay:   3,
		PortersRequiredNight: 2,
	}
	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if result.Name != "Theatres" {
		t.Errorf("expected Name=Theatres, got %s", result.Name)
	}
	if !result.Is247 {
		t.Error("expected is_24_7 to be carried over")
	}
	if !result.IsActive {
		t.Error("new departments must start active")
	}
}

func TestDepartmentService_Create_NameExists(t *testing.T) {
	svc, _ := setupTestDepartmentService()

	// "ED" is seeded in the mock.
	_, err := svc.Create(context.Background(), &dto.CreateDepartmentRequest{Name: "ED"})
	if !errors.Is(err, ErrDepartmentNameExists) {
		t.Errorf("expected ErrDepartmentNameExists, got %v", err)
	}
}

// ── GetByID ──

func TestDepartmentService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestDepartmentService()

	_, err := svc.GetByID(context.Background(), "nonexistent")
	if !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("expected ErrDepartmentNotFound, got %v", err)
	}
}

// ── List ──

func TestDepartmentService_List_ActiveOnly(t *testing.T) {
	svc, deptRepo := setupTestDepartmentService()
	deptRepo.departments["dept-closed"] = &model.Department{
		DepartmentID: "dept-closed",
		Name:         "Closed Ward",
		IsActive:     false,
	}

	depts, err := svc.List(context.Background(), &dto.DepartmentListRequest{IncludeInactive: false})
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	for _, d := range depts {
		if d.Name == "Closed Ward" {
			t.Error("inactive departments must be excluded by default")
		}
	}

	all, err := svc.List(context.Background(), &dto.DepartmentListRequest{IncludeInactive: true})
	if err != nil {
		t.Fatalf("List should succeed: %v", err)
	}
	if len(all) != len(depts)+1 {
		t.Errorf("include_inactive should add the closed ward: got %d vs %d", len(all), len(depts))
	}
}

// ── Update ──

func TestDepartmentService_Update_PartialFields(t *testing.T) {
	svc, _ := setupTestDepartmentService()

	day := 5
	result, err := svc.Update(context.Background(), "dept-ed", &dto.UpdateDepartmentRequest{PortersRequiredDay: &day})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if result.PortersRequiredDay != 5 {
		t.Errorf("expected porters_required_day=5, got %d", result.PortersRequiredDay)
	}
	if result.Name != "ED" {
		t.Errorf("untouched fields must survive a partial update, got name=%s", result.Name)
	}
}

// ── Deactivate ──

func TestDepartmentService_Deactivate_BlockedByPorters(t *testing.T) {
	svc, deptRepo := setupTestDepartmentService()
	deptRepo.porterCount["dept-ed"] = 4

	err := svc.Deactivate(context.Background(), "dept-ed")
	if !errors.Is(err, ErrDepartmentHasPorters) {
		t.Errorf("expected ErrDepartmentHasPorters, got %v", err)
	}
	if !deptRepo.departments["dept-ed"].IsActive {
		t.Error("a blocked deactivation must leave the department active")
	}
}

func TestDepartmentService_Deactivate_Success(t *testing.T) {
	svc, deptRepo := setupTestDepartmentService()

	if err := svc.Deactivate(context.Background(), "dept-ed"); err != nil {
		t.Fatalf("Deactivate should succeed: %v", err)
	}
	if deptRepo.departments["dept-ed"].IsActive {
		t.Error("department should be inactive after Deactivate")
	}
}
