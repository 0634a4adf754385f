package ortools

import (
	"context"
	"fmt"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/proto"
)

// Options はソルバーの実行予算です。ゼロ値は CP-SAT の既定に委ねます。
type Options struct {
	// MaxTime は求解の打ち切り時間です。0 なら無制限です。
	MaxTime time.Duration
	// NumWorkers は並列探索ワーカー数です。0 なら CP-SAT が決定します。
	NumWorkers int
}

// Solver は CP-SAT への求解委譲アダプタです。モデルの中身には関与せず、
// 受け取ったプロトをそのまま渡してレスポンスを返します。
type Solver struct {
	opts Options
	log  logrus.FieldLogger
}

// NewSolver は Solver を生成します。
func NewSolver(opts Options, log logrus.FieldLogger) *Solver {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Solver{opts: opts, log: log}
}

// Solve はモデルを CP-SAT に渡して求解します。呼び出し時点でコンテキストが
// 取り消し済みなら求解を開始しません。
func (s *Solver) Solve(ctx context.Context, model *cmpb.CpModelProto) (*cmpb.CpSolverResponse, error) {
	if model == nil {
		return nil, fmt.Errorf("ortools: model is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ortools: not starting solve: %w", err)
	}

	params := s.parameters()
	s.log.WithFields(logrus.Fields{
		"variables":   len(model.GetVariables()),
		"constraints": len(model.GetConstraints()),
		"max_time":    s.opts.MaxTime.String(),
		"num_workers": s.opts.NumWorkers,
	}).Info("delegating model to cp-sat")

	resp, err := cpmodel.SolveCpModelWithParameters(model, params)
	if err != nil {
		return nil, fmt.Errorf("ortools: solve: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"status":    resp.GetStatus().String(),
		"wall_time": resp.GetWallTime(),
	}).Info("cp-sat finished")

	return resp, nil
}

// parameters は Options を SatParameters に写します。
func (s *Solver) parameters() *sppb.SatParameters {
	params := &sppb.SatParameters{}
	if s.opts.MaxTime > 0 {
		params.MaxTimeInSeconds = proto.Float64(s.opts.MaxTime.Seconds())
	}
	if s.opts.NumWorkers > 0 {
		params.NumWorkers = proto.Int32(int32(s.opts.NumWorkers))
	}
	return params
}
