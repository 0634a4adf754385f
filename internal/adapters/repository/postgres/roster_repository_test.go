package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
)

func TestListEmployees(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	rows := pgxmock.NewRows([]string{
		"id", "role_id", "status_id",
		"daily_min_hours", "daily_opt_hours", "daily_max_hours",
		"weekly_min_hours", "weekly_opt_hours", "weekly_max_hours",
	}).
		AddRow(int64(1), int64(1), int64(1), 2, 6, 8, 20, 36, 40).
		AddRow(int64(2), int64(2), int64(2), 0, 4, 6, 0, 16, 24)

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees")).WillReturnRows(rows)

	repo := NewRosterRepository(mock)
	got, err := repo.ListEmployees(context.Background())
	if err != nil {
		t.Fatalf("ListEmployees returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(got))
	}
	if got[0].ID != 1 || got[0].WeeklyMaxHours != 40 {
		t.Errorf("unexpected first employee: %+v", got[0])
	}
	if got[1].RoleID != 2 || got[1].DailyMinHours != 0 {
		t.Errorf("unexpected second employee: %+v", got[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListTimeslots(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	start := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)
	rows := pgxmock.NewRows([]string{"id", "code_id", "starts_at", "day", "hour"}).
		AddRow(int64(1), int64(1), start, 0, 8).
		AddRow(int64(2), int64(1), start.Add(time.Hour), 0, 9)

	mock.ExpectQuery(regexp.QuoteMeta("FROM timeslots")).WillReturnRows(rows)

	repo := NewRosterRepository(mock)
	got, err := repo.ListTimeslots(context.Background())
	if err != nil {
		t.Fatalf("ListTimeslots returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 timeslots, got %d", len(got))
	}
	if got[0].Day != 0 || got[0].Hour != 8 || !got[0].StartsAt.Equal(start) {
		t.Errorf("unexpected first timeslot: %+v", got[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListWorkloadsQueryError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	cause := errors.New("relation does not exist")
	mock.ExpectQuery(regexp.QuoteMeta("FROM workload")).WillReturnError(cause)

	repo := NewRosterRepository(mock)
	if _, err := repo.ListWorkloads(context.Background()); !errors.Is(err, cause) {
		t.Fatalf("expected wrapped query error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListAvailabilityPreferencesEmpty(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"id", "timeslot_id", "employee_id"})
	mock.ExpectQuery(regexp.QuoteMeta("FROM availability_preferences")).WillReturnRows(rows)

	repo := NewRosterRepository(mock)
	got, err := repo.ListAvailabilityPreferences(context.Background())
	if err != nil {
		t.Fatalf("ListAvailabilityPreferences returned error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no preferences, got %d", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListEmployeeSkills(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"skill_id", "employee_id"}).
		AddRow(int64(1), int64(1)).
		AddRow(int64(1), int64(2)).
		AddRow(int64(2), int64(1))

	mock.ExpectQuery(regexp.QuoteMeta("FROM employees_skills")).WillReturnRows(rows)

	repo := NewRosterRepository(mock)
	got, err := repo.ListEmployeeSkills(context.Background())
	if err != nil {
		t.Fatalf("ListEmployeeSkills returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 links, got %d", len(got))
	}
	if got[2].SkillID != 2 || got[2].EmployeeID != 1 {
		t.Errorf("unexpected third link: %+v", got[2])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
