package roster

import "time"

// RoleNameManager はマネージャ職能を示すロール名です。
const RoleNameManager = "Manager"

// Role は従業員の職能区分です。
type Role struct {
	ID   int64
	Name string
}

// EmployeeStatus は雇用形態の参照テーブルです（Full-time、Part-time など）。
type EmployeeStatus struct {
	ID   int64
	Name string
}

// Employee は 1 回の求解の間は不変な従業員レコードです。
// 時間の上下限はすべて非負整数で、min ≤ opt ≤ max を満たします。
type Employee struct {
	ID             int64
	RoleID         int64
	StatusID       int64
	DailyMinHours  int
	DailyOptHours  int
	DailyMaxHours  int
	WeeklyMinHours int
	WeeklyOptHours int
	WeeklyMaxHours int
}

// ShiftCode はタイムスロットに紐づくシフト種別です。
type ShiftCode struct {
	ID          int64
	Name        string
	Description string
}

// Timeslot は計画対象の 1 時間枠です。Day は 0..6、Hour は 0..23 です。
type Timeslot struct {
	ID       int64
	CodeID   int64
	StartsAt time.Time
	Day      int
	Hour     int
}

// Skill はワークロード要求の職能です。
type Skill struct {
	ID   int64
	Name string
}

// EmployeeSkill は従業員がどの職能要求を満たせるかを表す多対多リンクです。
type EmployeeSkill struct {
	SkillID    int64
	EmployeeID int64
}

// Store は店舗の参照テーブルです。
type Store struct {
	ID int64
}

// Workload は (timeslot, skill, store) ごとの必要人数です。
// MinAmount ≤ OptAmount を満たします。OptAmount は本設計ではハード上限です。
type Workload struct {
	ID         int64
	TimeslotID int64
	SkillID    int64
	StoreID    int64
	MinAmount  int
	OptAmount  int
}

// AvailabilityPreference は従業員がそのタイムスロットに勤務できないことを表します。
// 除外リストとして解釈します（DESIGN.md の Open Question 参照）。
type AvailabilityPreference struct {
	ID         int64
	TimeslotID int64
	EmployeeID int64
}

// Snapshot は 1 回の求解に使う全テーブルの読み取り専用コピーです。
type Snapshot struct {
	Roles         []*Role
	Statuses      []*EmployeeStatus
	Employees     []*Employee
	ShiftCodes    []*ShiftCode
	Timeslots     []*Timeslot
	Skills        []*Skill
	EmployeeSkill []*EmployeeSkill
	Stores        []*Store
	Workloads     []*Workload
	Unavailable   []*AvailabilityPreference
}
