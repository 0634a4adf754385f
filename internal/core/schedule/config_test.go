package schedule

import (
	"reflect"
	"testing"
)

func TestEnabledGroupsOrder(t *testing.T) {
	t.Parallel()

	all := DefaultConstraintConfig().EnabledGroups()
	want := []string{
		"availability",
		"work_indicator",
		"transition",
		"consecutive_days_off",
		"hours",
		"workload",
		"manager",
		"one_skill_per_timeslot",
	}
	if !reflect.DeepEqual(all, want) {
		t.Errorf("EnabledGroups = %v, want %v", all, want)
	}

	cfg := ConstraintConfig{Manager: true, Availability: true}
	if got, want := cfg.EnabledGroups(), []string{"availability", "manager"}; !reflect.DeepEqual(got, want) {
		t.Errorf("EnabledGroups = %v, want %v", got, want)
	}
	if got := (ConstraintConfig{}).EnabledGroups(); got != nil {
		t.Errorf("EnabledGroups = %v, want nil", got)
	}
}

func TestBuildConfigDefaultHours(t *testing.T) {
	t.Parallel()

	if got := (BuildConfig{}).hoursPerDay(); got != 24 {
		t.Errorf("hoursPerDay = %d, want 24", got)
	}
	if got := (BuildConfig{HoursPerDay: 12}).hoursPerDay(); got != 12 {
		t.Errorf("hoursPerDay = %d, want 12", got)
	}
}
