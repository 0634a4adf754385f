package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/codex-shift-scheduler/internal/core/roster"
	pgdb "github.com/ogurasousui/codex-shift-scheduler/internal/platform/db/postgres"
)

// RosterRepository は PostgreSQL を利用したスケジューリング入力の読み取り実装です。
// SnapshotRunner 配下で呼ばれた場合はコンテキスト内のトランザクションを使い、
// 全テーブルが同一スナップショットから読まれます。
type RosterRepository struct {
	pool pgdb.Queryer
}

// NewRosterRepository は RosterRepository を生成します。
func NewRosterRepository(pool pgdb.Queryer) *RosterRepository {
	return &RosterRepository{pool: pool}
}

// ListRoles は全ロールを返します。
func (r *RosterRepository) ListRoles(ctx context.Context) ([]*roster.Role, error) {
	return listRows(ctx, r.pool, "roles",
		`SELECT id, name FROM roles ORDER BY id`,
		func(rows pgx.Rows) (*roster.Role, error) {
			var v roster.Role
			err := rows.Scan(&v.ID, &v.Name)
			return &v, err
		})
}

// ListStatuses は全雇用形態を返します。
func (r *RosterRepository) ListStatuses(ctx context.Context) ([]*roster.EmployeeStatus, error) {
	return listRows(ctx, r.pool, "statuses",
		`SELECT id, name FROM statuses ORDER BY id`,
		func(rows pgx.Rows) (*roster.EmployeeStatus, error) {
			var v roster.EmployeeStatus
			err := rows.Scan(&v.ID, &v.Name)
			return &v, err
		})
}

// ListEmployees は全従業員と勤務時間上下限を返します。
func (r *RosterRepository) ListEmployees(ctx context.Context) ([]*roster.Employee, error) {
	return listRows(ctx, r.pool, "employees",
		`SELECT id, role_id, status_id,
                daily_min_hours, daily_opt_hours, daily_max_hours,
                weekly_min_hours, weekly_opt_hours, weekly_max_hours
           FROM employees ORDER BY id`,
		func(rows pgx.Rows) (*roster.Employee, error) {
			var v roster.Employee
			err := rows.Scan(&v.ID, &v.RoleID, &v.StatusID,
				&v.DailyMinHours, &v.DailyOptHours, &v.DailyMaxHours,
				&v.WeeklyMinHours, &v.WeeklyOptHours, &v.WeeklyMaxHours)
			return &v, err
		})
}

// ListShiftCodes は全シフト種別を返します。
func (r *RosterRepository) ListShiftCodes(ctx context.Context) ([]*roster.ShiftCode, error) {
	return listRows(ctx, r.pool, "shift_codes",
		`SELECT id, name, description FROM shift_codes ORDER BY id`,
		func(rows pgx.Rows) (*roster.ShiftCode, error) {
			var v roster.ShiftCode
			err := rows.Scan(&v.ID, &v.Name, &v.Description)
			return &v, err
		})
}

// ListTimeslots は計画対象の全時間枠を返します。
func (r *RosterRepository) ListTimeslots(ctx context.Context) ([]*roster.Timeslot, error) {
	return listRows(ctx, r.pool, "timeslots",
		`SELECT id, code_id, starts_at, day, hour FROM timeslots ORDER BY id`,
		func(rows pgx.Rows) (*roster.Timeslot, error) {
			var v roster.Timeslot
			err := rows.Scan(&v.ID, &v.CodeID, &v.StartsAt, &v.Day, &v.Hour)
			return &v, err
		})
}

// ListSkills は全職能を返します。
func (r *RosterRepository) ListSkills(ctx context.Context) ([]*roster.Skill, error) {
	return listRows(ctx, r.pool, "skills",
		`SELECT id, name FROM skills ORDER BY id`,
		func(rows pgx.Rows) (*roster.Skill, error) {
			var v roster.Skill
			err := rows.Scan(&v.ID, &v.Name)
			return &v, err
		})
}

// ListEmployeeSkills は従業員と職能の対応を返します。
func (r *RosterRepository) ListEmployeeSkills(ctx context.Context) ([]*roster.EmployeeSkill, error) {
	return listRows(ctx, r.pool, "employees_skills",
		`SELECT skill_id, employee_id FROM employees_skills ORDER BY skill_id, employee_id`,
		func(rows pgx.Rows) (*roster.EmployeeSkill, error) {
			var v roster.EmployeeSkill
			err := rows.Scan(&v.SkillID, &v.EmployeeID)
			return &v, err
		})
}

// ListStores は全店舗を返します。
func (r *RosterRepository) ListStores(ctx context.Context) ([]*roster.Store, error) {
	return listRows(ctx, r.pool, "stores",
		`SELECT id FROM stores ORDER BY id`,
		func(rows pgx.Rows) (*roster.Store, error) {
			var v roster.Store
			err := rows.Scan(&v.ID)
			return &v, err
		})
}

// ListWorkloads は (時間枠, 職能, 店舗) ごとの必要人数を返します。
func (r *RosterRepository) ListWorkloads(ctx context.Context) ([]*roster.Workload, error) {
	return listRows(ctx, r.pool, "workload",
		`SELECT id, timeslot_id, skill_id, store_id, min_amount, opt_amount
           FROM workload ORDER BY id`,
		func(rows pgx.Rows) (*roster.Workload, error) {
			var v roster.Workload
			err := rows.Scan(&v.ID, &v.TimeslotID, &v.SkillID, &v.StoreID, &v.MinAmount, &v.OptAmount)
			return &v, err
		})
}

// ListAvailabilityPreferences は従業員が勤務できない時間枠の一覧を返します。
func (r *RosterRepository) ListAvailabilityPreferences(ctx context.Context) ([]*roster.AvailabilityPreference, error) {
	return listRows(ctx, r.pool, "availability_preferences",
		`SELECT id, timeslot_id, employee_id FROM availability_preferences ORDER BY id`,
		func(rows pgx.Rows) (*roster.AvailabilityPreference, error) {
			var v roster.AvailabilityPreference
			err := rows.Scan(&v.ID, &v.TimeslotID, &v.EmployeeID)
			return &v, err
		})
}

// listRows はクエリ実行と行走査の共通部分です。
func listRows[T any](ctx context.Context, pool pgdb.Queryer, table, query string, scan func(pgx.Rows) (*T, error)) ([]*T, error) {
	exec := pgdb.QueryerFromContext(ctx, pool)
	rows, err := exec.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: querying %s: %w", table, err)
	}
	defer rows.Close()

	var out []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scanning %s row: %w", table, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterating %s rows: %w", table, err)
	}
	return out, nil
}
