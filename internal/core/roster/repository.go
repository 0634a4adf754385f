package roster

import "context"

// Repository はスケジューリング入力テーブルの読み取り抽象です。
// このコアはテーブルを一切書き換えません。
type Repository interface {
	ListRoles(ctx context.Context) ([]*Role, error)
	ListStatuses(ctx context.Context) ([]*EmployeeStatus, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	ListShiftCodes(ctx context.Context) ([]*ShiftCode, error)
	ListTimeslots(ctx context.Context) ([]*Timeslot, error)
	ListSkills(ctx context.Context) ([]*Skill, error)
	ListEmployeeSkills(ctx context.Context) ([]*EmployeeSkill, error)
	ListStores(ctx context.Context) ([]*Store, error)
	ListWorkloads(ctx context.Context) ([]*Workload, error)
	ListAvailabilityPreferences(ctx context.Context) ([]*AvailabilityPreference, error)
}
