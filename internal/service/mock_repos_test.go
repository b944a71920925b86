package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Hypha-Media-UK/rotascope2/internal/model"
)

// ── mock DepartmentRepository ──

type mockDepartmentRepo struct {
	departments map[string]*model.Department
	porterCount map[string]int64
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{
		departments: map[string]*model.Department{
			"dept-ed": {DepartmentID: "dept-ed", Name: "ED", Is247: true, IsActive: true},
		},
		porterCount: make(map[string]int64),
	}
}

func (m *mockDepartmentRepo) Create(_ context.Context, dept *model.Department) error {
	if dept.DepartmentID == "" {
		dept.DepartmentID = fmt.Sprintf("dept-%d", len(m.departments)+1)
	}
	m.departments[dept.DepartmentID] = dept
	return nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id string) (*model.Department, error) {
	if d, ok := m.departments[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) GetByName(_ context.Context, name string) (*model.Department, error) {
	for _, d := range m.departments {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepo) List(_ context.Context) ([]model.Department, error) {
	var result []model.Department
	for _, d := range m.departments {
		if d.IsActive {
			result = append(result, *d)
		}
	}
	return result, nil
}

func (m *mockDepartmentRepo) ListAll(_ context.Context) ([]model.Department, error) {
	var result []model.Department
	for _, d := range m.departments {
		result = append(result, *d)
	}
	return result, nil
}

func (m *mockDepartmentRepo) Update(_ context.Context, dept *model.Department) error {
	m.departments[dept.DepartmentID] = dept
	return nil
}

func (m *mockDepartmentRepo) CountPorters(_ context.Context, departmentID string) (int64, error) {
	return m.porterCount[departmentID], nil
}

// ── mock ServiceRepository ──

type mockServiceRepo struct {
	services    map[string]*model.Service
	porterCount map[string]int64
}

func newMockServiceRepo() *mockServiceRepo {
	return &mockServiceRepo{
		services: map[string]*model.Service{
			"svc-post": {ServiceID: "svc-post", Name: "Post Round", IsActive: true},
		},
		porterCount: make(map[string]int64),
	}
}

func (m *mockServiceRepo) Create(_ context.Context, svc *model.Service) error {
	if svc.ServiceID == "" {
		svc.ServiceID = fmt.Sprintf("svc-%d", len(m.services)+1)
	}
	m.services[svc.ServiceID] = svc
	return nil
}

func (m *mockServiceRepo) GetByID(_ context.Context, id string) (*model.Service, error) {
	if s, ok := m.services[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockServiceRepo) GetByName(_ context.Context, name string) (*model.Service, error) {
	for _, s := range m.services {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockServiceRepo) List(_ context.Context) ([]model.Service, error) {
	var result []model.Service
	for _, s := range m.services {
		if s.IsActive {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockServiceRepo) ListAll(_ context.Context) ([]model.Service, error) {
	var result []model.Service
	for _, s := range m.services {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockServiceRepo) Update(_ context.Context, svc *model.Service) error {
	m.services[svc.ServiceID] = svc
	return nil
}

func (m *mockServiceRepo) CountPorters(_ context.Context, serviceID string) (int64, error) {
	return m.porterCount[serviceID], nil
}

// ── mock ShiftTypeRepository ──

type mockShiftTypeRepo struct {
	types      map[string]*model.ShiftType
	shiftCount map[string]int64
}

func newMockShiftTypeRepo() *mockShiftTypeRepo {
	return &mockShiftTypeRepo{
		types:      make(map[string]*model.ShiftType),
		shiftCount: make(map[string]int64),
	}
}

func (m *mockShiftTypeRepo) Create(_ context.Context, st *model.ShiftType) error {
	if st.ShiftTypeID == "" {
		st.ShiftTypeID = "st-" + st.Name
	}
	m.types[st.ShiftTypeID] = st
	return nil
}

func (m *mockShiftTypeRepo) GetByID(_ context.Context, id string) (*model.ShiftType, error) {
	if st, ok := m.types[id]; ok {
		return st, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftTypeRepo) List(_ context.Context) ([]model.ShiftType, error) {
	var result []model.ShiftType
	for _, st := range m.types {
		if st.IsActive {
			result = append(result, *st)
		}
	}
	return result, nil
}

func (m *mockShiftTypeRepo) Update(_ context.Context, st *model.ShiftType) error {
	m.types[st.ShiftTypeID] = st
	return nil
}

func (m *mockShiftTypeRepo) CountShifts(_ context.Context, shiftTypeID string) (int64, error) {
	return m.shiftCount[shiftTypeID], nil
}

// ── mock ShiftRepository ──

type mockShiftRepo struct {
	shifts      map[string]*model.Shift
	porterCount map[string]int64
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{
		shifts: map[string]*model.Shift{
			"shift-a": {
				ShiftID:        "shift-a",
				Name:           "Day Shift A",
				StartsAt:       "07:00",
				EndsAt:         "19:00",
				DaysOn:         4,
				DaysOff:        4,
				GroundZeroDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				IsActive:       true,
			},
		},
		porterCount: make(map[string]int64),
	}
}

func (m *mockShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	if shift.ShiftID == "" {
		shift.ShiftID = fmt.Sprintf("shift-%d", len(m.shifts)+1)
	}
	m.shifts[shift.ShiftID] = shift
	return nil
}

func (m *mockShiftRepo) GetByID(_ context.Context, id string) (*model.Shift, error) {
	if s, ok := m.shifts[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) List(_ context.Context) ([]model.Shift, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		if s.IsActive {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockShiftRepo) ListAll(_ context.Context) ([]model.Shift, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockShiftRepo) Update(_ context.Context, shift *model.Shift) error {
	m.shifts[shift.ShiftID] = shift
	return nil
}

func (m *mockShiftRepo) CountPorters(_ context.Context, shiftID string) (int64, error) {
	return m.porterCount[shiftID], nil
}

// ── mock PorterRepository ──

type mockPorterRepo struct {
	porters map[string]*model.Porter
	hours   map[string][]model.PorterHours
	shifts  *mockShiftRepo // for association hydration
}

func newMockPorterRepo(shifts *mockShiftRepo) *mockPorterRepo {
	return &mockPorterRepo{
		porters: make(map[string]*model.Porter),
		hours:   make(map[string][]model.PorterHours),
		shifts:  shifts,
	}
}

// hydrate mimics the Preload chain: attach the shift and custom hours.
func (m *mockPorterRepo) hydrate(p *model.Porter) *model.Porter {
	cp := *p
	if cp.ShiftID != nil && m.shifts != nil {
		if s, ok := m.shifts.shifts[*cp.ShiftID]; ok {
			cp.Shift = s
		}
	}
	cp.CustomHours = m.hours[cp.PorterID]
	return &cp
}

func (m *mockPorterRepo) Create(_ context.Context, porter *model.Porter) error {
	if porter.PorterID == "" {
		porter.PorterID = fmt.Sprintf("porter-%d", len(m.porters)+1)
	}
	m.porters[porter.PorterID] = porter
	return nil
}

func (m *mockPorterRepo) GetByID(_ context.Context, id string) (*model.Porter, error) {
	if p, ok := m.porters[id]; ok {
		return m.hydrate(p), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPorterRepo) List(_ context.Context) ([]model.Porter, error) {
	var result []model.Porter
	for _, p := range m.porters {
		if p.IsActive {
			result = append(result, *m.hydrate(p))
		}
	}
	return result, nil
}

func (m *mockPorterRepo) ListAll(_ context.Context) ([]model.Porter, error) {
	var result []model.Porter
	for _, p := range m.porters {
		result = append(result, *m.hydrate(p))
	}
	return result, nil
}

func (m *mockPorterRepo) ListByShift(_ context.Context, shiftID string) ([]model.Porter, error) {
	var result []model.Porter
	for _, p := range m.porters {
		if p.IsActive && p.ShiftID != nil && *p.ShiftID == shiftID {
			result = append(result, *m.hydrate(p))
		}
	}
	return result, nil
}

func (m *mockPorterRepo) Update(_ context.Context, porter *model.Porter) error {
	m.porters[porter.PorterID] = porter
	return nil
}

func (m *mockPorterRepo) ReplaceHours(_ context.Context, porterID string, hours []model.PorterHours) error {
	m.hours[porterID] = hours
	return nil
}

// ── mock FrozenScheduleRepository ──

var errMockSnapshotWrite = errors.New("snapshot write failed")

type mockFrozenScheduleRepo struct {
	snapshots   map[string]*model.FrozenSchedule // keyed by date string
	assignments map[string][]model.FrozenPorterAssignment
	failCreate  bool
}

func newMockFrozenScheduleRepo() *mockFrozenScheduleRepo {
	return &mockFrozenScheduleRepo{
		snapshots:   make(map[string]*model.FrozenSchedule),
		assignments: make(map[string][]model.FrozenPorterAssignment),
	}
}

func (m *mockFrozenScheduleRepo) GetByDate(_ context.Context, date time.Time) (*model.FrozenSchedule, error) {
	if s, ok := m.snapshots[date.Format("2006-01-02")]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFrozenScheduleRepo) ListDates(_ context.Context, from, to time.Time) ([]model.FrozenSchedule, error) {
	var result []model.FrozenSchedule
	for _, s := range m.snapshots {
		if !s.Date.Before(from) && !s.Date.After(to) {
			result = append(result, *s)
		}
	}
	return result, nil
}

// CreateSnapshot mirrors the transactional contract: on failure nothing
// is stored, header and rows land together or not at all.
func (m *mockFrozenScheduleRepo) CreateSnapshot(_ context.Context, snapshot *model.FrozenSchedule, assignments []model.FrozenPorterAssignment) error {
	if m.failCreate {
		return errMockSnapshotWrite
	}
	if snapshot.FrozenScheduleID == "" {
		snapshot.FrozenScheduleID = "frozen-" + snapshot.Date.Format("2006-01-02")
	}
	for i := range assignments {
		assignments[i].FrozenScheduleID = snapshot.FrozenScheduleID
	}
	m.snapshots[snapshot.Date.Format("2006-01-02")] = snapshot
	m.assignments[snapshot.FrozenScheduleID] = assignments
	return nil
}

func (m *mockFrozenScheduleRepo) ListAssignments(_ context.Context, frozenScheduleID string) ([]model.FrozenPorterAssignment, error) {
	return m.assignments[frozenScheduleID], nil
}
