package roster

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// SnapshotRunner は全テーブルを一貫した状態で読むためのトランザクション抽象です。
type SnapshotRunner interface {
	WithinSnapshot(ctx context.Context, fn func(context.Context) error) error
}

type inlineSnapshotRunner struct{}

func (inlineSnapshotRunner) WithinSnapshot(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service は入力テーブルの読み込みと読み込み時検証をまとめます。
type Service struct {
	repo Repository
	tx   SnapshotRunner
	log  logrus.FieldLogger
}

// NewService は Service を生成します。
func NewService(repo Repository, tx SnapshotRunner, log logrus.FieldLogger) *Service {
	if tx == nil {
		tx = inlineSnapshotRunner{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{repo: repo, tx: tx, log: log}
}

// LoadSnapshot は全テーブルを 1 つのリードオンリートランザクションで読み込み、
// スキーマ違反があれば即座に失敗します。ステータスによる従業員の除外は行いません。
// その解釈は呼び出し側の責務です。
func (s *Service) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot

	if err := s.tx.WithinSnapshot(ctx, func(txCtx context.Context) error {
		var err error
		if snap.Roles, err = s.repo.ListRoles(txCtx); err != nil {
			return fmt.Errorf("roster: list roles: %w", err)
		}
		if snap.Statuses, err = s.repo.ListStatuses(txCtx); err != nil {
			return fmt.Errorf("roster: list statuses: %w", err)
		}
		if snap.Employees, err = s.repo.ListEmployees(txCtx); err != nil {
			return fmt.Errorf("roster: list employees: %w", err)
		}
		if snap.ShiftCodes, err = s.repo.ListShiftCodes(txCtx); err != nil {
			return fmt.Errorf("roster: list shift codes: %w", err)
		}
		if snap.Timeslots, err = s.repo.ListTimeslots(txCtx); err != nil {
			return fmt.Errorf("roster: list timeslots: %w", err)
		}
		if snap.Skills, err = s.repo.ListSkills(txCtx); err != nil {
			return fmt.Errorf("roster: list skills: %w", err)
		}
		if snap.EmployeeSkill, err = s.repo.ListEmployeeSkills(txCtx); err != nil {
			return fmt.Errorf("roster: list employee skills: %w", err)
		}
		if snap.Stores, err = s.repo.ListStores(txCtx); err != nil {
			return fmt.Errorf("roster: list stores: %w", err)
		}
		if snap.Workloads, err = s.repo.ListWorkloads(txCtx); err != nil {
			return fmt.Errorf("roster: list workloads: %w", err)
		}
		if snap.Unavailable, err = s.repo.ListAvailabilityPreferences(txCtx); err != nil {
			return fmt.Errorf("roster: list availability preferences: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	if err := validateSnapshot(&snap); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"employees": len(snap.Employees),
		"timeslots": len(snap.Timeslots),
		"workloads": len(snap.Workloads),
	}).Info("roster snapshot loaded")

	return &snap, nil
}

func validateSnapshot(snap *Snapshot) error {
	if len(snap.Employees) == 0 {
		return ErrNoEmployees
	}
	if len(snap.Timeslots) == 0 {
		return ErrNoTimeslots
	}

	for _, e := range snap.Employees {
		if !orderedBounds(e.DailyMinHours, e.DailyOptHours, e.DailyMaxHours) {
			return fmt.Errorf("%w: employee %d daily %d/%d/%d",
				ErrInvalidHourBounds, e.ID, e.DailyMinHours, e.DailyOptHours, e.DailyMaxHours)
		}
		if !orderedBounds(e.WeeklyMinHours, e.WeeklyOptHours, e.WeeklyMaxHours) {
			return fmt.Errorf("%w: employee %d weekly %d/%d/%d",
				ErrInvalidHourBounds, e.ID, e.WeeklyMinHours, e.WeeklyOptHours, e.WeeklyMaxHours)
		}
	}

	seen := make(map[[2]int]int64, len(snap.Timeslots))
	for _, ts := range snap.Timeslots {
		if ts.Day < 0 || ts.Day > 6 || ts.Hour < 0 || ts.Hour > 23 {
			return fmt.Errorf("%w: timeslot %d day=%d hour=%d", ErrInvalidTimeslot, ts.ID, ts.Day, ts.Hour)
		}
		key := [2]int{ts.Day, ts.Hour}
		if other, ok := seen[key]; ok {
			return fmt.Errorf("%w: timeslots %d and %d both cover day=%d hour=%d",
				ErrDuplicateTimeslot, other, ts.ID, ts.Day, ts.Hour)
		}
		seen[key] = ts.ID
	}

	for _, w := range snap.Workloads {
		if w.MinAmount < 0 || w.MinAmount > w.OptAmount {
			return fmt.Errorf("%w: workload %d min=%d opt=%d", ErrInvalidWorkload, w.ID, w.MinAmount, w.OptAmount)
		}
	}

	return nil
}

func orderedBounds(min, opt, max int) bool {
	return min >= 0 && min <= opt && opt <= max
}
