package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ogurasousui/codex-shift-scheduler/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-shift-scheduler/internal/adapters/solver/ortools"
	"github.com/ogurasousui/codex-shift-scheduler/internal/core/roster"
	"github.com/ogurasousui/codex-shift-scheduler/internal/core/schedule"
	"github.com/ogurasousui/codex-shift-scheduler/internal/platform/config"
	pg "github.com/ogurasousui/codex-shift-scheduler/internal/platform/db/postgres"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env は開発時の上書き用で、存在しなくても構いません。
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database pool")
	}
	defer dbPool.Close()

	rosterSvc := roster.NewService(
		postgres.NewRosterRepository(dbPool),
		pg.NewSnapshotRunner(dbPool),
		log,
	)
	solver := ortools.NewSolver(ortools.Options{
		MaxTime:    cfg.Solver.MaxTime,
		NumWorkers: cfg.Solver.NumWorkers,
	}, log)
	scheduleSvc := schedule.NewService(rosterSvc, solver, buildConfig(cfg.Scheduler), log)

	sched, err := scheduleSvc.GenerateSchedule(ctx)
	if err != nil {
		var infErr *schedule.InfeasibleError
		if errors.As(err, &infErr) {
			log.WithField("enabled_groups", infErr.EnabledGroups).Error("no feasible schedule exists")
			os.Exit(2)
		}
		log.WithError(err).Fatal("schedule generation failed")
	}

	render(os.Stdout, sched)
}

// buildConfig は設定ファイルのトグルをモデル構築設定に写します。
func buildConfig(cfg config.SchedulerConfig) schedule.BuildConfig {
	return schedule.BuildConfig{
		HoursPerDay: cfg.HoursPerDay,
		Constraints: schedule.ConstraintConfig{
			Availability:        config.Enabled(cfg.Constraints.Availability),
			WorkIndicator:       config.Enabled(cfg.Constraints.WorkIndicator),
			Transition:          config.Enabled(cfg.Constraints.Transition),
			ConsecutiveDaysOff:  config.Enabled(cfg.Constraints.ConsecutiveDaysOff),
			Hours:               config.Enabled(cfg.Constraints.Hours),
			Workload:            config.Enabled(cfg.Constraints.Workload),
			Manager:             config.Enabled(cfg.Constraints.Manager),
			OneSkillPerTimeslot: config.Enabled(cfg.Constraints.OneSkillPerTimeslot),
		},
	}
}

// render は勤務表を日別に出力します。連続する時刻はひとまとまりの区間に畳みます。
func render(w io.Writer, sched *schedule.Schedule) {
	fmt.Fprintf(w, "run %s (%s), %d shifts, wall time %s\n",
		sched.RunID, sched.Status, len(sched.Shifts), sched.WallTime)
	for _, issue := range sched.Issues {
		fmt.Fprintf(w, "  data issue: %s\n", issue)
	}

	byDay := make(map[int][]schedule.DayShift)
	var days []int
	for _, shift := range sched.Shifts {
		if _, ok := byDay[shift.Day]; !ok {
			days = append(days, shift.Day)
		}
		byDay[shift.Day] = append(byDay[shift.Day], shift)
	}
	sort.Ints(days)

	for _, d := range days {
		fmt.Fprintf(w, "day %d\n", d)
		for _, shift := range byDay[d] {
			fmt.Fprintf(w, "  employee %d: %s\n", shift.EmployeeID, formatHours(shift.Hours))
		}
	}
}

// formatHours は昇順の時刻リストを "08:00-12:00" 形式の区間列にします。
func formatHours(hours []int) string {
	if len(hours) == 0 {
		return "-"
	}

	var out string
	start := hours[0]
	prev := hours[0]
	flush := func(end int) {
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%02d:00-%02d:00", start, end+1)
	}
	for _, h := range hours[1:] {
		if h != prev+1 {
			flush(prev)
			start = h
		}
		prev = h
	}
	flush(prev)
	return out
}
