package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/codex-shift-scheduler/internal/core/roster"
	"github.com/sirupsen/logrus"
)

// SnapshotLoader は計画対象データの一括読み出しを提供します。
type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context) (*roster.Snapshot, error)
}

// Service はスナップショットの取得、モデル組み立て、求解、解の復元までを束ねます。
type Service struct {
	roster SnapshotLoader
	solver Solver
	cfg    BuildConfig
	log    logrus.FieldLogger
}

// NewService は Service を生成します。
func NewService(loader SnapshotLoader, solver Solver, cfg BuildConfig, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{roster: loader, solver: solver, cfg: cfg, log: log}
}

// GenerateSchedule は 1 回の計画実行を行います。充足可能な場合は勤務表を返し、
// 充足不能な場合は有効だった制約グループを添えた InfeasibleError を返します。
func (s *Service) GenerateSchedule(ctx context.Context) (*Schedule, error) {
	runID := uuid.NewString()
	log := s.log.WithField("run_id", runID)
	started := time.Now()

	snap, err := s.roster.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("schedule: loading snapshot: %w", err)
	}

	model, err := BuildModel(snap, s.cfg, log)
	if err != nil {
		return nil, err
	}

	resp, err := s.solver.Solve(ctx, model.Proto())
	if err != nil {
		return nil, fmt.Errorf("schedule: solving: %w", err)
	}

	status, err := interpretStatus(resp, s.cfg.Constraints)
	if err != nil {
		log.WithField("status", resp.GetStatus().String()).Warn("solve did not produce a schedule")
		return nil, err
	}

	sched := &Schedule{
		RunID:     runID,
		Status:    status,
		Objective: resp.GetObjectiveValue(),
		WallTime:  time.Since(started),
		Issues:    model.Issues(),
		Shifts:    extractShifts(resp, model.Grid()),
	}

	log.WithFields(logrus.Fields{
		"status":    string(status),
		"shifts":    len(sched.Shifts),
		"wall_time": sched.WallTime.String(),
	}).Info("schedule generated")

	return sched, nil
}
