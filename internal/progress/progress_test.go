package progress

import (
	"math"
	"testing"

	"github.com/cimoun/SkillForge/internal/schema"
)

func TestLevelFromHoursThresholds(t *testing.T) {
	cases := map[float64]int{
		0:     0,
		0.99:  0,
		1:     1,
		10.99: 1,
		11:    2,
		40.99: 2,
		41:    3,
		100.5: 3,
		101:   4,
		250.9: 4,
		251:   5,
		10000: 5,
	}
	for hours, want := range cases {
		if got := LevelFromHours(hours); got != want {
			t.Fatalf("LevelFromHours(%v)=%d, want %d", hours, got, want)
		}
	}
}

func TestHoursToNext(t *testing.T) {
	if got := HoursToNext(0); got != 1 {
		t.Fatalf("HoursToNext(0)=%v, want 1", got)
	}
	if got := HoursToNext(5); got != 6 {
		t.Fatalf("HoursToNext(5)=%v, want 6", got)
	}
	if got := HoursToNext(300); got != 0 {
		t.Fatalf("HoursToNext(300)=%v, want 0", got)
	}
}

func TestActivityHours(t *testing.T) {
	logs := []schema.TimeLog{
		{ActivityID: 1, Hours: 2},
		{ActivityID: 2, Hours: 3},
		{ActivityID: 1, Hours: 0.5},
	}
	if got := ActivityHours(1, logs); got != 2.5 {
		t.Fatalf("ActivityHours(1)=%v, want 2.5", got)
	}
	if got := ActivityHours(9, logs); got != 0 {
		t.Fatalf("ActivityHours(9)=%v, want 0", got)
	}
}

func TestSkillWeightedHoursNoLinks(t *testing.T) {
	acts := []schema.Activity{{ID: 1, Skills: schema.SkillLinks{{SkillID: 20, Weight: 1}}}}
	logs := []schema.TimeLog{{ActivityID: 1, Hours: 4}}
	if got := SkillWeightedHours(10, acts, logs); got != 0 {
		t.Fatalf("weighted hours = %v, want 0", got)
	}
	if got := SkillWeightedHours(10, nil, nil); got != 0 {
		t.Fatalf("weighted hours on empty state = %v, want 0", got)
	}
}

func TestSkillWeightedHoursFractional(t *testing.T) {
	// 权重 0.5，总计 20 小时 → 10 加权小时
	acts := []schema.Activity{{ID: 1, Skills: schema.SkillLinks{{SkillID: 10, Weight: 0.5}}}}
	logs := []schema.TimeLog{
		{ActivityID: 1, Hours: 12},
		{ActivityID: 1, Hours: 8},
	}
	if got := SkillWeightedHours(10, acts, logs); math.Abs(got-10) > 1e-9 {
		t.Fatalf("weighted hours = %v, want 10", got)
	}
}

func TestSkillWeightedHoursFanOut(t *testing.T) {
	// 同一批记录同时灌给两个技能，不做均摊
	acts := []schema.Activity{{
		ID: 1,
		Skills: schema.SkillLinks{
			{SkillID: 10, Weight: 0.5},
			{SkillID: 20, Weight: 1.0},
		},
	}}
	logs := []schema.TimeLog{{ActivityID: 1, Hours: 4}}

	if got := SkillWeightedHours(10, acts, logs); math.Abs(got-2) > 1e-9 {
		t.Fatalf("skill 10 weighted hours = %v, want 2", got)
	}
	if got := SkillWeightedHours(20, acts, logs); math.Abs(got-4) > 1e-9 {
		t.Fatalf("skill 20 weighted hours = %v, want 4", got)
	}
}

func TestSkillWeightedHoursDuplicateLinks(t *testing.T) {
	// 多重边按多重性累加
	acts := []schema.Activity{{
		ID: 1,
		Skills: schema.SkillLinks{
			{SkillID: 10, Weight: 0.3},
			{SkillID: 10, Weight: 0.2},
		},
	}}
	logs := []schema.TimeLog{{ActivityID: 1, Hours: 10}}
	if got := SkillWeightedHours(10, acts, logs); math.Abs(got-5) > 1e-9 {
		t.Fatalf("weighted hours = %v, want 5", got)
	}
}

func TestTargetProgress(t *testing.T) {
	if got := TargetProgress(2, 4); got != 50 {
		t.Fatalf("progress = %v, want 50", got)
	}
	if got := TargetProgress(5, 3); got != 100 {
		t.Fatalf("progress = %v, want capped 100", got)
	}
	if got := TargetProgress(3, 0); got != 0 {
		t.Fatalf("progress with zero target = %v, want 0", got)
	}
}
