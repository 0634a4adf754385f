package schedule

import (
	"fmt"
	"sort"

	"github.com/ogurasousui/codex-shift-scheduler/internal/core/roster"
)

// SlotTime はタイムスロットの (日, 時) 位置です。日も時もゼロ始まりです。
type SlotTime struct {
	Day  int
	Hour int
}

// RequirementEntry は (タイムスロット, 職能) ごとの必要人数です。
// 同じ組に複数店舗の行がある場合、人数は合算されます。
type RequirementEntry struct {
	TimeslotID int64
	SkillID    int64
	MinAmount  int
	OptAmount  int
}

// UnavailableSlot は従業員が勤務できない (日, 時) です。
type UnavailableSlot struct {
	EmployeeID int64
	Day        int
	Hour       int
}

// Indexes はスナップショットから導出した高速参照構造です。入力テーブルは変更しません。
// すべてのスライスは決定的な順序を持ち、同じスナップショットからは常に同じ内容になります。
type Indexes struct {
	EmployeeIDs     []int64
	EmployeePos     map[int64]int
	Days            []int
	SlotByTimeslot  map[int64]SlotTime
	EligibleBySkill map[int64][]int64
	Requirements    []RequirementEntry
	Managers        map[int64]bool
	ManagerIDs      []int64
	Unavailable     []UnavailableSlot
}

// BuildIndexes はスナップショットから参照構造を構築します。
// 参照先の欠けた行は DataIssue として報告され、その行の寄与だけが除外されます。
func BuildIndexes(snap *roster.Snapshot) (*Indexes, []DataIssue) {
	idx := &Indexes{
		EmployeePos:     make(map[int64]int),
		SlotByTimeslot:  make(map[int64]SlotTime),
		EligibleBySkill: make(map[int64][]int64),
		Managers:        make(map[int64]bool),
	}
	var issues []DataIssue

	knownEmployees := make(map[int64]bool, len(snap.Employees))
	for _, e := range snap.Employees {
		idx.EmployeeIDs = append(idx.EmployeeIDs, e.ID)
		knownEmployees[e.ID] = true
	}
	sort.Slice(idx.EmployeeIDs, func(i, j int) bool { return idx.EmployeeIDs[i] < idx.EmployeeIDs[j] })
	for pos, id := range idx.EmployeeIDs {
		idx.EmployeePos[id] = pos
	}

	managerRoles := make(map[int64]bool)
	for _, r := range snap.Roles {
		if r.Name == roster.RoleNameManager {
			managerRoles[r.ID] = true
		}
	}
	for _, e := range snap.Employees {
		if managerRoles[e.RoleID] {
			idx.Managers[e.ID] = true
			idx.ManagerIDs = append(idx.ManagerIDs, e.ID)
		}
	}
	sort.Slice(idx.ManagerIDs, func(i, j int) bool { return idx.ManagerIDs[i] < idx.ManagerIDs[j] })

	daySet := make(map[int]bool)
	for _, ts := range snap.Timeslots {
		idx.SlotByTimeslot[ts.ID] = SlotTime{Day: ts.Day, Hour: ts.Hour}
		daySet[ts.Day] = true
	}
	for d := range daySet {
		idx.Days = append(idx.Days, d)
	}
	sort.Ints(idx.Days)

	knownSkills := make(map[int64]bool, len(snap.Skills))
	for _, sk := range snap.Skills {
		knownSkills[sk.ID] = true
	}

	for _, link := range snap.EmployeeSkill {
		if !knownSkills[link.SkillID] {
			issues = append(issues, DataIssue{
				Table:  "employees_skills",
				RowID:  link.SkillID,
				Detail: fmt.Sprintf("skill %d not found in skills table", link.SkillID),
			})
			continue
		}
		if !knownEmployees[link.EmployeeID] {
			issues = append(issues, DataIssue{
				Table:  "employees_skills",
				RowID:  link.EmployeeID,
				Detail: fmt.Sprintf("employee %d not found in employees table", link.EmployeeID),
			})
			continue
		}
		idx.EligibleBySkill[link.SkillID] = append(idx.EligibleBySkill[link.SkillID], link.EmployeeID)
	}
	for skillID := range idx.EligibleBySkill {
		eligible := idx.EligibleBySkill[skillID]
		sort.Slice(eligible, func(i, j int) bool { return eligible[i] < eligible[j] })
		idx.EligibleBySkill[skillID] = dedupeIDs(eligible)
	}

	merged := make(map[[2]int64]*RequirementEntry)
	for _, w := range snap.Workloads {
		if _, ok := idx.SlotByTimeslot[w.TimeslotID]; !ok {
			issues = append(issues, DataIssue{
				Table:  "workload",
				RowID:  w.ID,
				Detail: fmt.Sprintf("timeslot %d not found in timeslot table", w.TimeslotID),
			})
			continue
		}
		if !knownSkills[w.SkillID] {
			issues = append(issues, DataIssue{
				Table:  "workload",
				RowID:  w.ID,
				Detail: fmt.Sprintf("skill %d not found in skills table", w.SkillID),
			})
			continue
		}
		key := [2]int64{w.TimeslotID, w.SkillID}
		if entry, ok := merged[key]; ok {
			entry.MinAmount += w.MinAmount
			entry.OptAmount += w.OptAmount
		} else {
			merged[key] = &RequirementEntry{
				TimeslotID: w.TimeslotID,
				SkillID:    w.SkillID,
				MinAmount:  w.MinAmount,
				OptAmount:  w.OptAmount,
			}
		}
	}
	for _, entry := range merged {
		idx.Requirements = append(idx.Requirements, *entry)
	}
	sort.Slice(idx.Requirements, func(i, j int) bool {
		a, b := idx.Requirements[i], idx.Requirements[j]
		if a.TimeslotID != b.TimeslotID {
			return a.TimeslotID < b.TimeslotID
		}
		return a.SkillID < b.SkillID
	})

	for _, pref := range snap.Unavailable {
		slot, ok := idx.SlotByTimeslot[pref.TimeslotID]
		if !ok {
			issues = append(issues, DataIssue{
				Table:  "availability_preferences",
				RowID:  pref.ID,
				Detail: fmt.Sprintf("timeslot %d not found in timeslot table", pref.TimeslotID),
			})
			continue
		}
		if !knownEmployees[pref.EmployeeID] {
			issues = append(issues, DataIssue{
				Table:  "availability_preferences",
				RowID:  pref.ID,
				Detail: fmt.Sprintf("employee %d not found in employees table", pref.EmployeeID),
			})
			continue
		}
		idx.Unavailable = append(idx.Unavailable, UnavailableSlot{
			EmployeeID: pref.EmployeeID,
			Day:        slot.Day,
			Hour:       slot.Hour,
		})
	}
	sort.Slice(idx.Unavailable, func(i, j int) bool {
		a, b := idx.Unavailable[i], idx.Unavailable[j]
		if a.EmployeeID != b.EmployeeID {
			return a.EmployeeID < b.EmployeeID
		}
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		return a.Hour < b.Hour
	})

	return idx, issues
}

// Eligible は職能を満たせる従業員 ID を昇順で返します。
func (idx *Indexes) Eligible(skillID int64) []int64 {
	return idx.EligibleBySkill[skillID]
}

func dedupeIDs(sorted []int64) []int64 {
	out := sorted[:0]
	var prev int64 = -1
	for i, id := range sorted {
		if i == 0 || id != prev {
			out = append(out, id)
		}
		prev = id
	}
	return out
}
