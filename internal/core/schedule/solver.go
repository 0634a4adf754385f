package schedule

import (
	"context"
	"sort"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
)

// Solver は組み立て済みモデルの求解を外部ソルバーに委譲します。
type Solver interface {
	Solve(ctx context.Context, model *cmpb.CpModelProto) (*cmpb.CpSolverResponse, error)
}

// interpretStatus はソルバーの終了ステータスをドメインの結果に写します。
// OPTIMAL と FEASIBLE だけが解の抽出に進みます。
func interpretStatus(resp *cmpb.CpSolverResponse, cfg ConstraintConfig) (SolveStatus, error) {
	switch resp.GetStatus() {
	case cmpb.CpSolverStatus_OPTIMAL:
		return StatusOptimal, nil
	case cmpb.CpSolverStatus_FEASIBLE:
		return StatusFeasible, nil
	case cmpb.CpSolverStatus_INFEASIBLE:
		return "", &InfeasibleError{EnabledGroups: cfg.EnabledGroups()}
	default:
		return "", &InconclusiveError{Status: resp.GetStatus().String()}
	}
}

// extractShifts は解の割り当てを従業員別・日別の勤務時間に復元します。
// 勤務時間ゼロの日は省かれ、時刻は昇順、シフトは (従業員, 日) の昇順です。
func extractShifts(resp *cmpb.CpSolverResponse, grid *Grid) []DayShift {
	var shifts []DayShift
	for _, e := range grid.EmployeeIDs() {
		for _, d := range grid.Days() {
			var hours []int
			for h := 0; h < grid.HoursPerDay(); h++ {
				v, ok := grid.Shift(e, d, h)
				if !ok {
					continue
				}
				if cpmodel.SolutionBooleanValue(resp, v) {
					hours = append(hours, h)
				}
			}
			if len(hours) == 0 {
				continue
			}
			sort.Ints(hours)
			shifts = append(shifts, DayShift{EmployeeID: e, Day: d, Hours: hours})
		}
	}
	return shifts
}
