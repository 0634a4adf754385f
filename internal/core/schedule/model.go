package schedule

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	"github.com/ogurasousui/codex-shift-scheduler/internal/core/roster"
	"github.com/sirupsen/logrus"
)

// Model は組み立て済みの CP-SAT モデルと、解の復元に必要な索引を保持します。
type Model struct {
	proto  *cmpb.CpModelProto
	grid   *Grid
	idx    *Indexes
	issues []DataIssue
	cfg    BuildConfig
}

// Proto はシリアライズ可能なモデルを返します。
func (m *Model) Proto() *cmpb.CpModelProto { return m.proto }

// Grid は決定変数グリッドを返します。
func (m *Model) Grid() *Grid { return m.grid }

// Indexes は構築時に導出した索引を返します。
func (m *Model) Indexes() *Indexes { return m.idx }

// Issues は構築中に検出され、スキップされた参照不整合を返します。
func (m *Model) Issues() []DataIssue { return m.issues }

// Config は構築に使われた設定を返します。
func (m *Model) Config() BuildConfig { return m.cfg }

// BuildModel はスナップショットから CP-SAT モデルを組み立てます。
// 参照不整合は行単位でスキップして Issues に記録し、制約グループの
// 充足不能（有資格者ゼロの要求、マネージャ不在）は型付きエラーで返します。
// 同じスナップショットと設定からは常に構造的に同一のモデルが得られます。
func BuildModel(snap *roster.Snapshot, cfg BuildConfig, log logrus.FieldLogger) (*Model, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	idx, issues := BuildIndexes(snap)
	for _, issue := range issues {
		log.WithFields(logrus.Fields{
			"table":  issue.Table,
			"row_id": issue.RowID,
		}).Warn(issue.Detail)
	}

	b := cpmodel.NewCpModelBuilder()
	grid := NewGrid(b, idx, cfg.hoursPerDay())

	emps := make(map[int64]*roster.Employee, len(snap.Employees))
	for _, e := range snap.Employees {
		emps[e.ID] = e
	}

	asm := &assembler{
		b:    b,
		grid: grid,
		idx:  idx,
		cfg:  cfg.Constraints,
		emps: emps,
		log:  log,
	}
	if err := asm.assemble(); err != nil {
		return nil, err
	}

	proto, err := b.Model()
	if err != nil {
		return nil, fmt.Errorf("schedule: building model proto: %w", err)
	}

	log.WithFields(logrus.Fields{
		"variables":   len(proto.GetVariables()),
		"constraints": len(proto.GetConstraints()),
		"groups":      cfg.Constraints.EnabledGroups(),
	}).Info("model assembled")

	return &Model{proto: proto, grid: grid, idx: idx, issues: issues, cfg: cfg}, nil
}
