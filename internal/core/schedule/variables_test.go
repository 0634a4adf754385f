package schedule

import (
	"testing"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

func TestNewGridAllocatesEveryCell(t *testing.T) {
	t.Parallel()

	idx, _ := BuildIndexes(smallSnapshot())
	b := cpmodel.NewCpModelBuilder()
	grid := NewGrid(b, idx, 4)

	if got, want := grid.ShiftCount(), 2*2*4; got != want {
		t.Errorf("ShiftCount = %d, want %d", got, want)
	}
	if got, want := grid.WorksCount(), 2*2; got != want {
		t.Errorf("WorksCount = %d, want %d", got, want)
	}

	for _, e := range grid.EmployeeIDs() {
		for _, d := range grid.Days() {
			if _, ok := grid.Works(e, d); !ok {
				t.Errorf("Works(%d, %d) missing", e, d)
			}
			for h := 0; h < grid.HoursPerDay(); h++ {
				if _, ok := grid.Shift(e, d, h); !ok {
					t.Errorf("Shift(%d, %d, %d) missing", e, d, h)
				}
			}
		}
	}

	if _, ok := grid.Shift(1, 0, 4); ok {
		t.Error("Shift(1, 0, 4) exists outside the declared grid")
	}
	if _, ok := grid.Shift(99, 0, 0); ok {
		t.Error("Shift(99, 0, 0) exists for an undeclared employee")
	}
}

func TestNewGridVariableNames(t *testing.T) {
	t.Parallel()

	idx, _ := BuildIndexes(smallSnapshot())
	b := cpmodel.NewCpModelBuilder()
	NewGrid(b, idx, 4)

	proto, err := b.Model()
	if err != nil {
		t.Fatalf("Model() error = %v", err)
	}
	vars := proto.GetVariables()
	if len(vars) != 2*2*4+2*2 {
		t.Fatalf("len(variables) = %d, want %d", len(vars), 2*2*4+2*2)
	}

	// 割り当ては従業員→日→時の順で決定的です。
	if got, want := vars[0].GetName(), "shift_e1_d0_h0"; got != want {
		t.Errorf("variables[0].Name = %q, want %q", got, want)
	}
	if got, want := vars[7].GetName(), "shift_e1_d1_h3"; got != want {
		t.Errorf("variables[7].Name = %q, want %q", got, want)
	}
	if got, want := vars[15].GetName(), "shift_e2_d1_h3"; got != want {
		t.Errorf("variables[15].Name = %q, want %q", got, want)
	}
	if got, want := vars[16].GetName(), "works_e1_d0"; got != want {
		t.Errorf("variables[16].Name = %q, want %q", got, want)
	}
	if got, want := vars[19].GetName(), "works_e2_d1"; got != want {
		t.Errorf("variables[19].Name = %q, want %q", got, want)
	}
}
