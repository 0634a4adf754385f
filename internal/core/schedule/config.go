package schedule

// ConstraintConfig は制約グループごとの有効・無効を列挙する明示的な設定です。
// モデル構築のエントリポイントへ値渡しされ、プロセス全域の可変フラグは存在しません。
// グループを無効化しても決定変数の割り当てには影響せず、制約の生成だけが抑止されます。
type ConstraintConfig struct {
	Availability        bool
	WorkIndicator       bool
	Transition          bool
	ConsecutiveDaysOff  bool
	Hours               bool
	Workload            bool
	Manager             bool
	OneSkillPerTimeslot bool
}

// DefaultConstraintConfig は全グループを有効にした設定を返します。
func DefaultConstraintConfig() ConstraintConfig {
	return ConstraintConfig{
		Availability:        true,
		WorkIndicator:       true,
		Transition:          true,
		ConsecutiveDaysOff:  true,
		Hours:               true,
		Workload:            true,
		Manager:             true,
		OneSkillPerTimeslot: true,
	}
}

// EnabledGroups は有効なグループ名を固定順で返します。
// INFEASIBLE 診断レポートに添付されます。
func (c ConstraintConfig) EnabledGroups() []string {
	var groups []string
	for _, g := range []struct {
		name    string
		enabled bool
	}{
		{"availability", c.Availability},
		{"work_indicator", c.WorkIndicator},
		{"transition", c.Transition},
		{"consecutive_days_off", c.ConsecutiveDaysOff},
		{"hours", c.Hours},
		{"workload", c.Workload},
		{"manager", c.Manager},
		{"one_skill_per_timeslot", c.OneSkillPerTimeslot},
	} {
		if g.enabled {
			groups = append(groups, g.name)
		}
	}
	return groups
}

// BuildConfig はモデル構築の入力設定です。
type BuildConfig struct {
	// HoursPerDay はタイムグリッドの 1 日あたりの時間数です（既定 24）。
	HoursPerDay int
	Constraints ConstraintConfig
}

func (c BuildConfig) hoursPerDay() int {
	if c.HoursPerDay <= 0 {
		return 24
	}
	return c.HoursPerDay
}
