package entities

import "testing"

func TestWeeklySchedule_Overlaps(t *testing.T) {
	talent := WeeklySchedule{Monday: []string{"Morning"}, Friday: []string{"Evening"}}

	if !talent.Overlaps(WeeklySchedule{Friday: []string{"Evening", "Late"}}) {
		t.Fatal("expected overlap on friday evening")
	}
	if talent.Overlaps(WeeklySchedule{Monday: []string{"Evening"}, Friday: []string{"Morning"}}) {
		t.Fatal("same shift names on different days must not overlap")
	}
	if talent.Overlaps(WeeklySchedule{}) {
		t.Fatal("empty schedule must not overlap")
	}
}

func TestWeeklySchedule_HasAndShifts(t *testing.T) {
	s := WeeklySchedule{Sunday: []string{"Brunch"}}
	if !s.Has(Sunday, "Brunch") {
		t.Fatal("expected sunday brunch")
	}
	if s.Has(Weekday("funday"), "Brunch") {
		t.Fatal("unknown day must have no shifts")
	}
	if got := s.Normalized().Tuesday; got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil tuesday, got %#v", got)
	}
}

func TestCompensationRange(t *testing.T) {
	r := CompensationRange{Min: 18, Max: 22}
	if got := r.MatchAmount(CompensationHourly); got != 20 {
		t.Fatalf("expected hourly midpoint 20 got %v", got)
	}
	if got := r.MatchAmount(CompensationSalary); got != 18 {
		t.Fatalf("expected salary minimum 18 got %v", got)
	}
	if !r.Contains(18) || !r.Contains(22) || r.Contains(22.01) {
		t.Fatal("range bounds must be inclusive")
	}
	if err := (CompensationRange{Min: 30, Max: 20}).Validate(); err == nil {
		t.Fatal("expected min > max to fail")
	}
	if err := (CompensationRange{Min: -1, Max: 20}).Validate(); err == nil {
		t.Fatal("expected negative compensation to fail")
	}
}

func TestCategorizeSkill(t *testing.T) {
	cases := map[string]SkillCategory{
		"Knife skills":   SkillCategoryBOH,
		"Wine knowledge": SkillCategoryFOH,
		"POS Toast":      SkillCategoryFOH,
		"Spanish":        SkillCategoryGeneral,
		"knife skills":   SkillCategoryGeneral,
	}
	for name, want := range cases {
		if got := CategorizeSkill(name); got != want {
			t.Fatalf("%s: expected %s got %s", name, want, got)
		}
	}
}

func TestJobPosting_MatchStartDate(t *testing.T) {
	p := &JobPosting{}
	if got := p.MatchStartDate(); got != "Immediately" {
		t.Fatalf("expected Immediately got %s", got)
	}
	p.StartDate.SetValid("2026-11-01")
	if got := p.MatchStartDate(); got != "2026-11-01" {
		t.Fatalf("expected posting start date got %s", got)
	}
}

func TestTeamRolePermissions(t *testing.T) {
	member := &TeamMember{Role: TeamRoleMember}
	if member.HasRole(RolesFor(ActionManageTeam)...) {
		t.Fatal("member must not manage a team")
	}
	if !member.HasRole(RolesFor(ActionViewPostings)...) {
		t.Fatal("member may view postings")
	}
	admin := &TeamMember{Role: TeamRoleAdmin}
	if admin.HasRole(RolesFor(ActionDeleteTeam)...) {
		t.Fatal("only the owner may delete a team")
	}
	if len(RolesFor(TeamAction("unknown"))) != 0 {
		t.Fatal("unknown action must allow no role")
	}
}
