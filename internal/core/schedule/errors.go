package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNilSnapshot = errors.New("schedule: snapshot is required")
	ErrNilModel    = errors.New("schedule: model is required")
	ErrNoManagers  = errors.New("schedule: no manager employees exist for manager presence constraint")
)

// DataIssue は参照整合性の欠落など、項目単位で報告されるデータ上の問題です。
// モデル構築全体は中断せず、該当項目の制約だけが生成されません。
type DataIssue struct {
	Table  string
	RowID  int64
	Detail string
}

func (i DataIssue) String() string {
	return fmt.Sprintf("%s[%d]: %s", i.Table, i.RowID, i.Detail)
}

// RequirementInfeasibleError は最小必要人数が正なのに有資格従業員が存在しない
// ワークロード要求を表します。ソルバーを呼ぶまでもなく充足不能です。
type RequirementInfeasibleError struct {
	TimeslotID int64
	SkillID    int64
	MinAmount  int
}

func (e *RequirementInfeasibleError) Error() string {
	return fmt.Sprintf("schedule: workload for timeslot %d skill %d requires %d employees but none are eligible",
		e.TimeslotID, e.SkillID, e.MinAmount)
}

// InfeasibleError はソルバーが INFEASIBLE を返したことを表します。
// 診断の手がかりとして、有効だった制約グループの一覧を保持します。
type InfeasibleError struct {
	EnabledGroups []string
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("schedule: model is infeasible (enabled constraint groups: %s)",
		strings.Join(e.EnabledGroups, ", "))
}

// InconclusiveError はタイムアウトなど、INFEASIBLE とは区別される
// 決着のつかなかったソルバー終了を表します。
type InconclusiveError struct {
	Status string
}

func (e *InconclusiveError) Error() string {
	return fmt.Sprintf("schedule: solver finished without a conclusive result (status %s)", e.Status)
}
