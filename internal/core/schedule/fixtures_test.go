package schedule

import (
	"io"
	"time"

	"github.com/ogurasousui/codex-shift-scheduler/internal/core/roster"
	"github.com/sirupsen/logrus"
)

// silentLogger はテスト出力を汚さないロガーです。
func silentLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// smallSnapshot は 2 従業員 × 2 日 × 4 時間の最小スナップショットを返します。
// 従業員 1 はマネージャで全職能を持ち、従業員 2 は一般職でレジ職能のみです。
func smallSnapshot() *roster.Snapshot {
	base := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	var timeslots []*roster.Timeslot
	id := int64(1)
	for d := 0; d < 2; d++ {
		for h := 0; h < 4; h++ {
			timeslots = append(timeslots, &roster.Timeslot{
				ID:       id,
				CodeID:   1,
				StartsAt: base.AddDate(0, 0, d).Add(time.Duration(h) * time.Hour),
				Day:      d,
				Hour:     h,
			})
			id++
		}
	}

	return &roster.Snapshot{
		Roles: []*roster.Role{
			{ID: 1, Name: roster.RoleNameManager},
			{ID: 2, Name: "Staff"},
		},
		Statuses: []*roster.EmployeeStatus{
			{ID: 1, Name: "Full-time"},
		},
		Employees: []*roster.Employee{
			{
				ID: 1, RoleID: 1, StatusID: 1,
				DailyMinHours: 0, DailyOptHours: 2, DailyMaxHours: 4,
				WeeklyMinHours: 0, WeeklyOptHours: 4, WeeklyMaxHours: 8,
			},
			{
				ID: 2, RoleID: 2, StatusID: 1,
				DailyMinHours: 0, DailyOptHours: 2, DailyMaxHours: 4,
				WeeklyMinHours: 0, WeeklyOptHours: 4, WeeklyMaxHours: 8,
			},
		},
		ShiftCodes: []*roster.ShiftCode{{ID: 1, Name: "Open"}},
		Timeslots:  timeslots,
		Skills: []*roster.Skill{
			{ID: 1, Name: "Register"},
			{ID: 2, Name: "Stocking"},
		},
		EmployeeSkill: []*roster.EmployeeSkill{
			{SkillID: 1, EmployeeID: 1},
			{SkillID: 2, EmployeeID: 1},
			{SkillID: 1, EmployeeID: 2},
		},
		Stores: []*roster.Store{{ID: 1}},
		Workloads: []*roster.Workload{
			{ID: 1, TimeslotID: 1, SkillID: 1, StoreID: 1, MinAmount: 1, OptAmount: 2},
		},
	}
}

// smallBuildConfig は smallSnapshot に合わせた 4 時間グリッドの設定を返します。
func smallBuildConfig(constraints ConstraintConfig) BuildConfig {
	return BuildConfig{HoursPerDay: 4, Constraints: constraints}
}
