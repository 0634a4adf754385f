package ortools

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	"github.com/sirupsen/logrus"
)

func silentLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestSolveRejectsNilModel(t *testing.T) {
	t.Parallel()

	s := NewSolver(Options{}, silentLogger())
	if _, err := s.Solve(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil model")
	}
}

func TestSolveRespectsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSolver(Options{}, silentLogger())
	if _, err := s.Solve(ctx, emptyModel(t)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func emptyModel(t *testing.T) *cmpb.CpModelProto {
	t.Helper()
	model, err := cpmodel.NewCpModelBuilder().Model()
	if err != nil {
		t.Fatalf("building empty model: %v", err)
	}
	return model
}

func TestParameters(t *testing.T) {
	t.Parallel()

	s := NewSolver(Options{MaxTime: 90 * time.Second, NumWorkers: 8}, silentLogger())
	params := s.parameters()
	if got := params.GetMaxTimeInSeconds(); got != 90 {
		t.Errorf("MaxTimeInSeconds = %v, want 90", got)
	}
	if got := params.GetNumWorkers(); got != 8 {
		t.Errorf("NumWorkers = %v, want 8", got)
	}

	// ゼロ値は未設定のままにして CP-SAT の既定値を保ちます。
	s = NewSolver(Options{}, silentLogger())
	params = s.parameters()
	if params.MaxTimeInSeconds != nil {
		t.Errorf("MaxTimeInSeconds = %v, want unset", params.GetMaxTimeInSeconds())
	}
	if params.NumWorkers != nil {
		t.Errorf("NumWorkers = %v, want unset", params.GetNumWorkers())
	}
}
