package schedule

import "time"

// SolveStatus は成功した求解の終了ステータスです。
type SolveStatus string

const (
	StatusOptimal  SolveStatus = "optimal"
	StatusFeasible SolveStatus = "feasible"
)

// DayShift は 1 従業員の 1 日分の勤務時間リストです。Hours は昇順です。
type DayShift struct {
	EmployeeID int64
	Day        int
	Hours      []int
}

// Schedule は求解結果です。勤務時間が 0 の (従業員, 日) は含まれません。
// 休日はエラーではなく単に出力に現れないだけです。
type Schedule struct {
	RunID     string
	Status    SolveStatus
	Objective float64
	WallTime  time.Duration
	Issues    []DataIssue
	Shifts    []DayShift
}

// HoursFor は指定した従業員と日の勤務時間リストを返します。勤務がなければ nil です。
func (s *Schedule) HoursFor(employeeID int64, day int) []int {
	for _, shift := range s.Shifts {
		if shift.EmployeeID == employeeID && shift.Day == day {
			return shift.Hours
		}
	}
	return nil
}
