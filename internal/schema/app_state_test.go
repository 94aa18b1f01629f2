package schema

import "testing"

func TestSweepSkillLinksKeepsActivity(t *testing.T) {
	acts := []Activity{
		{ID: 1, Name: "Go 圣经", Skills: SkillLinks{{SkillID: 10, Weight: 1}}},
		{ID: 2, Name: "练手项目", Skills: SkillLinks{{SkillID: 10, Weight: 0.5}, {SkillID: 20, Weight: 0.5}}},
	}

	out := SweepSkillLinks(acts, 10)

	if len(out) != 2 {
		t.Fatalf("activities = %d, want 2", len(out))
	}
	// 活动 1 只链接被删技能：边清空但活动保留
	if len(out[0].Skills) != 0 {
		t.Fatalf("activity 1 skills = %v, want empty", out[0].Skills)
	}
	if len(out[1].Skills) != 1 || out[1].Skills[0].SkillID != 20 {
		t.Fatalf("activity 2 skills = %v, want only skill 20", out[1].Skills)
	}
}

func TestSweepSkillLinksDoesNotMutateInput(t *testing.T) {
	acts := []Activity{
		{ID: 1, Skills: SkillLinks{{SkillID: 10, Weight: 1}, {SkillID: 20, Weight: 1}}},
	}

	_ = SweepSkillLinks(acts, 10)

	if len(acts[0].Skills) != 2 {
		t.Fatalf("input mutated: skills = %v", acts[0].Skills)
	}
}

func TestSweepSkillLinksDuplicateEdges(t *testing.T) {
	// 同一技能的多重边应一起被摘除
	acts := []Activity{
		{ID: 1, Skills: SkillLinks{{SkillID: 10, Weight: 0.3}, {SkillID: 10, Weight: 0.7}, {SkillID: 20, Weight: 1}}},
	}

	out := SweepSkillLinks(acts, 10)
	if len(out[0].Skills) != 1 || out[0].Skills[0].SkillID != 20 {
		t.Fatalf("skills = %v, want only skill 20", out[0].Skills)
	}
}

func TestSweepTimeLogs(t *testing.T) {
	logs := []TimeLog{
		{ID: 1, ActivityID: 100, Hours: 2},
		{ID: 2, ActivityID: 200, Hours: 1},
		{ID: 3, ActivityID: 100, Hours: 0.5},
	}

	out := SweepTimeLogs(logs, 100)

	if len(out) != 1 || out[0].ID != 2 {
		t.Fatalf("logs = %v, want only log 2", out)
	}
	if len(logs) != 3 {
		t.Fatalf("input mutated: %v", logs)
	}
}

func TestNextStatusCycle(t *testing.T) {
	cases := map[string]string{
		StatusPlanned:   StatusActive,
		StatusActive:    StatusCompleted,
		StatusCompleted: StatusPlanned,
		"":              StatusPlanned,
	}
	for in, want := range cases {
		if got := NextStatus(in); got != want {
			t.Fatalf("NextStatus(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestClampTargetLevel(t *testing.T) {
	cases := map[int]int{0: 1, -2: 1, 1: 1, 3: 3, 5: 5, 7: 5}
	for in, want := range cases {
		if got := ClampTargetLevel(in); got != want {
			t.Fatalf("ClampTargetLevel(%d)=%d, want %d", in, got, want)
		}
	}
}

func TestNormalizePriority(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 3, 0: 2, 9: 2, -1: 2}
	for in, want := range cases {
		if got := NormalizePriority(in); got != want {
			t.Fatalf("NormalizePriority(%d)=%d, want %d", in, got, want)
		}
	}
}

func TestNormalizeActivityType(t *testing.T) {
	if got := NormalizeActivityType("book"); got != ActivityBook {
		t.Fatalf("type = %q, want book", got)
	}
	if got := NormalizeActivityType("Course"); got != ActivityCourse {
		t.Fatalf("type = %q, want course fallback", got)
	}
}
