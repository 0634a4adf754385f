package schedule

import (
	"errors"
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	"github.com/ogurasousui/codex-shift-scheduler/internal/core/roster"
	"github.com/sirupsen/logrus"
)

// assembler は 7 つの制約グループをモデルへ書き込みます。
// 同じ入力からの組み立ては常に同じ順序で進み、構造的に同一のモデルを生成します。
type assembler struct {
	b    *cpmodel.Builder
	grid *Grid
	idx  *Indexes
	cfg  ConstraintConfig
	emps map[int64]*roster.Employee
	log  logrus.FieldLogger
}

// assemble は有効な制約グループを固定順で適用します。
// 充足不能なワークロード要求は RequirementInfeasibleError として集約され、
// 残りの項目の処理は継続されます。
func (a *assembler) assemble() error {
	if a.cfg.Availability {
		a.addAvailability()
	}
	if a.cfg.WorkIndicator {
		a.addWorkIndicator()
	}
	if a.cfg.Transition {
		a.addTransitions()
	}
	if a.cfg.ConsecutiveDaysOff {
		a.addConsecutiveDaysOff()
	}
	if a.cfg.Hours {
		a.addHourBounds()
	}

	var errs []error
	if a.cfg.Workload {
		errs = append(errs, a.addWorkloadCoverage()...)
	}
	if a.cfg.Manager {
		errs = append(errs, a.addManagerPresence()...)
	}

	// one_skill_per_timeslot は構造的に充足済みです: 決定変数は職能を区別しない
	// (従業員, 日, 時) ごとのブール値なので、1 勤務時間が複数の職能要求に
	// 二重計上されることはありません。トグルは診断レポートのためだけに残ります。

	return errors.Join(errs...)
}

// addAvailability は勤務不可として列挙された (従業員, 日, 時) の
// 決定変数を 0 に固定します。
func (a *assembler) addAvailability() {
	for _, slot := range a.idx.Unavailable {
		v, ok := a.grid.Shift(slot.EmployeeID, slot.Day, slot.Hour)
		if !ok {
			// グリッド解像度の外にある時間枠には変数がなく、勤務も起こり得ません。
			continue
		}
		a.b.AddEquality(v, cpmodel.NewConstant(0))
	}
}

// addWorkIndicator は works[e,d] と勤務時間合計の双方向リンクを張ります。
// works が真なら合計 ≥ 1、偽なら合計 = 0 で、片方向の含意ではありません。
func (a *assembler) addWorkIndicator() {
	for _, e := range a.grid.EmployeeIDs() {
		for _, d := range a.grid.Days() {
			works, _ := a.grid.Works(e, d)
			total := a.dailySum(e, d)
			a.b.AddGreaterOrEqual(total, cpmodel.NewConstant(1)).OnlyEnforceIf(works)
			a.b.AddEquality(total, cpmodel.NewConstant(0)).OnlyEnforceIf(works.Not())
		}
	}
}

// addTransitions は隣接する時刻ペアごとに遷移ブール変数を導入し、
// 1 日あたりの遷移数を 2 以下に制限します。0 回（終日休みまたは終日勤務）か
// 2 回（ひと続きのブロック 1 つ）だけが許されます。日境界の時刻 0 と最終時刻も
// 特別扱いせず、同じ遷移カウントで扱います。
func (a *assembler) addTransitions() {
	hours := a.grid.HoursPerDay()
	for _, e := range a.grid.EmployeeIDs() {
		for _, d := range a.grid.Days() {
			transitions := cpmodel.NewLinearExpr()
			for h := 0; h+1 < hours; h++ {
				cur, _ := a.grid.Shift(e, d, h)
				next, _ := a.grid.Shift(e, d, h+1)
				tr := a.b.NewBoolVar().WithName(fmt.Sprintf("transition_e%d_d%d_h%d", e, d, h))
				a.b.AddNotEqual(cur, next).OnlyEnforceIf(tr)
				a.b.AddEquality(cur, next).OnlyEnforceIf(tr.Not())
				transitions.Add(tr)
			}
			a.b.AddLessOrEqual(transitions, cpmodel.NewConstant(2))
		}
	}
}

// addConsecutiveDaysOff は隣接する暦日ペアごとに両日休みのブール変数を導入し、
// 各従業員に少なくとも 1 ペアを要求します。
func (a *assembler) addConsecutiveDaysOff() {
	days := a.grid.Days()
	for _, e := range a.grid.EmployeeIDs() {
		pairs := cpmodel.NewLinearExpr()
		pairCount := 0
		for i := 0; i+1 < len(days); i++ {
			if days[i+1] != days[i]+1 {
				continue
			}
			cur, _ := a.grid.Works(e, days[i])
			next, _ := a.grid.Works(e, days[i+1])
			both := a.b.NewBoolVar().WithName(fmt.Sprintf("both_off_e%d_d%d", e, days[i]))
			a.b.AddBoolAnd(cur.Not(), next.Not()).OnlyEnforceIf(both)
			a.b.AddBoolOr(cur, next).OnlyEnforceIf(both.Not())
			pairs.Add(both)
			pairCount++
		}
		if pairCount > 0 {
			a.b.AddGreaterOrEqual(pairs, cpmodel.NewConstant(1))
		}
	}
}

// addHourBounds は日次・週次の勤務時間合計を従業員ごとの [min, max] に収めます。
// 日次の下限は勤務日にのみ適用されます。そうしないと min > 0 の従業員は
// 休日を一切取れなくなります。日次・週次の opt 目標は記録されるだけで、
// 目的関数としては適用されません（既知のギャップ）。
func (a *assembler) addHourBounds() {
	for _, e := range a.grid.EmployeeIDs() {
		emp := a.emps[e]
		if emp == nil {
			continue
		}

		weekly := cpmodel.NewLinearExpr()
		for _, d := range a.grid.Days() {
			daily := a.dailySum(e, d)
			a.b.AddLessOrEqual(daily, cpmodel.NewConstant(int64(emp.DailyMaxHours)))
			if emp.DailyMinHours > 0 {
				works, _ := a.grid.Works(e, d)
				a.b.AddGreaterOrEqual(daily, cpmodel.NewConstant(int64(emp.DailyMinHours))).OnlyEnforceIf(works)
			}
			for h := 0; h < a.grid.HoursPerDay(); h++ {
				v, _ := a.grid.Shift(e, d, h)
				weekly.Add(v)
			}
		}
		a.b.AddGreaterOrEqual(weekly, cpmodel.NewConstant(int64(emp.WeeklyMinHours)))
		a.b.AddLessOrEqual(weekly, cpmodel.NewConstant(int64(emp.WeeklyMaxHours)))
	}
}

// addWorkloadCoverage は (タイムスロット, 職能) ごとに、有資格かつ勤務中の
// 従業員数を [MinAmount, OptAmount] に収めます。OptAmount はハード上限です。
// 有資格者が 0 名で MinAmount > 0 の要求は、空和 ≥ 正定数という形で
// ソルバーに黙って拒否させるのではなく、構築時に型付きエラーとして報告します。
func (a *assembler) addWorkloadCoverage() []error {
	var errs []error
	for _, req := range a.idx.Requirements {
		slot := a.idx.SlotByTimeslot[req.TimeslotID]
		eligible := a.idx.Eligible(req.SkillID)

		if len(eligible) == 0 {
			if req.MinAmount > 0 {
				errs = append(errs, &RequirementInfeasibleError{
					TimeslotID: req.TimeslotID,
					SkillID:    req.SkillID,
					MinAmount:  req.MinAmount,
				})
			}
			continue
		}

		assigned := cpmodel.NewLinearExpr()
		resolved := 0
		for _, e := range eligible {
			v, ok := a.grid.Shift(e, slot.Day, slot.Hour)
			if !ok {
				continue
			}
			assigned.Add(v)
			resolved++
		}
		if resolved == 0 {
			a.log.WithFields(logrus.Fields{
				"timeslot": req.TimeslotID,
				"skill":    req.SkillID,
			}).Warn("workload hour outside grid resolution, requirement skipped")
			continue
		}

		a.b.AddGreaterOrEqual(assigned, cpmodel.NewConstant(int64(req.MinAmount)))
		a.b.AddLessOrEqual(assigned, cpmodel.NewConstant(int64(req.OptAmount)))
	}
	return errs
}

// addManagerPresence は正の最小必要人数を持つタイムスロットごとに、
// 少なくとも 1 名のマネージャ職の勤務を要求します。
func (a *assembler) addManagerPresence() []error {
	needed := make(map[int64]bool)
	var order []int64
	for _, req := range a.idx.Requirements {
		if req.MinAmount > 0 && !needed[req.TimeslotID] {
			needed[req.TimeslotID] = true
			order = append(order, req.TimeslotID)
		}
	}
	if len(order) == 0 {
		return nil
	}
	if len(a.idx.ManagerIDs) == 0 {
		return []error{fmt.Errorf("%w: %d timeslots need manager presence", ErrNoManagers, len(order))}
	}

	for _, tsID := range order {
		slot := a.idx.SlotByTimeslot[tsID]
		present := cpmodel.NewLinearExpr()
		resolved := 0
		for _, m := range a.idx.ManagerIDs {
			v, ok := a.grid.Shift(m, slot.Day, slot.Hour)
			if !ok {
				continue
			}
			present.Add(v)
			resolved++
		}
		if resolved == 0 {
			continue
		}
		a.b.AddGreaterOrEqual(present, cpmodel.NewConstant(1))
	}
	return nil
}

func (a *assembler) dailySum(employeeID int64, day int) *cpmodel.LinearExpr {
	sum := cpmodel.NewLinearExpr()
	for h := 0; h < a.grid.HoursPerDay(); h++ {
		v, _ := a.grid.Shift(employeeID, day, h)
		sum.Add(v)
	}
	return sum
}
