package schedule

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

type gridKey struct {
	employeeID int64
	day        int
	hour       int
}

type workKey struct {
	employeeID int64
	day        int
}

// Grid は決定変数の格子です。shift[e,d,h] は「従業員 e が日 d の時刻 h に勤務する」
// を表すブール変数で、works[e,d] はその日の勤務有無のインジケータです。
// 変数の存在は Grid だけが所有し、制約グループは参照のみを行います。
type Grid struct {
	employeeIDs []int64
	days        []int
	hoursPerDay int
	shift       map[gridKey]cpmodel.BoolVar
	works       map[workKey]cpmodel.BoolVar
}

// NewGrid は宣言された従業員・日・時刻の範囲に対して、重複も欠落もなく
// ちょうど 1 つずつブール変数を割り当てます。変数名は添字を埋め込んだ
// 決定的な形式（shift_e1_d0_h8 など）で、二次参照なしにデバッグできます。
// どの制約グループが有効かには依存しません。
func NewGrid(b *cpmodel.Builder, idx *Indexes, hoursPerDay int) *Grid {
	g := &Grid{
		employeeIDs: idx.EmployeeIDs,
		days:        idx.Days,
		hoursPerDay: hoursPerDay,
		shift:       make(map[gridKey]cpmodel.BoolVar, len(idx.EmployeeIDs)*len(idx.Days)*hoursPerDay),
		works:       make(map[workKey]cpmodel.BoolVar, len(idx.EmployeeIDs)*len(idx.Days)),
	}

	for _, e := range g.employeeIDs {
		for _, d := range g.days {
			for h := 0; h < hoursPerDay; h++ {
				g.shift[gridKey{e, d, h}] = b.NewBoolVar().WithName(fmt.Sprintf("shift_e%d_d%d_h%d", e, d, h))
			}
		}
	}
	for _, e := range g.employeeIDs {
		for _, d := range g.days {
			g.works[workKey{e, d}] = b.NewBoolVar().WithName(fmt.Sprintf("works_e%d_d%d", e, d))
		}
	}

	return g
}

// Shift は (従業員, 日, 時) の決定変数を返します。範囲外なら ok=false です。
func (g *Grid) Shift(employeeID int64, day, hour int) (cpmodel.BoolVar, bool) {
	v, ok := g.shift[gridKey{employeeID, day, hour}]
	return v, ok
}

// Works は (従業員, 日) の勤務インジケータ変数を返します。
func (g *Grid) Works(employeeID int64, day int) (cpmodel.BoolVar, bool) {
	v, ok := g.works[workKey{employeeID, day}]
	return v, ok
}

// EmployeeIDs はグリッドが割り当てた従業員 ID を昇順で返します。
func (g *Grid) EmployeeIDs() []int64 { return g.employeeIDs }

// Days はグリッドが割り当てた日を昇順で返します。
func (g *Grid) Days() []int { return g.days }

// HoursPerDay は 1 日あたりの時間数を返します。
func (g *Grid) HoursPerDay() int { return g.hoursPerDay }

// ShiftCount は shift 変数の総数です。
func (g *Grid) ShiftCount() int { return len(g.shift) }

// WorksCount は works 変数の総数です。
func (g *Grid) WorksCount() int { return len(g.works) }
