package service

import (
	"context"
	"testing"

	"github.com/cimoun/SkillForge/internal/schema"
)

func TestActivityServiceCreateDefaultsWeight(t *testing.T) {
	svc := NewActivityService(newFakeActivityRepo(), newFakeTimeLogRepo(), nil)
	ctx := context.Background()

	act, err := svc.Create(ctx, "刷题", "practice", schema.SkillLinks{
		{SkillID: 1, Weight: 0},
		{SkillID: 2, Weight: 0.4},
		{SkillID: 0, Weight: 1}, // 无效引用直接丢弃
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if len(act.Skills) != 2 {
		t.Fatalf("links=%+v, want 2", act.Skills)
	}
	if act.Skills[0].Weight != 1 || act.Skills[1].Weight != 0.4 {
		t.Fatalf("weights=%+v, want 1 and 0.4", act.Skills)
	}
	if act.Status != schema.StatusPlanned {
		t.Fatalf("status=%q, want planned", act.Status)
	}
}

func TestActivityServiceToggleStatus(t *testing.T) {
	repo := newFakeActivityRepo(&schema.Activity{Name: "x", Status: schema.StatusPlanned})
	svc := NewActivityService(repo, newFakeTimeLogRepo(), nil)
	ctx := context.Background()

	want := []string{schema.StatusActive, schema.StatusCompleted, schema.StatusPlanned}
	for _, w := range want {
		act, err := svc.ToggleStatus(ctx, 1)
		if err != nil {
			t.Fatalf("ToggleStatus error: %v", err)
		}
		if act.Status != w {
			t.Fatalf("status=%q, want %q", act.Status, w)
		}
	}
}

func TestActivityServiceDeleteSweepsTimeLogs(t *testing.T) {
	actRepo := newFakeActivityRepo(
		&schema.Activity{Name: "del"},
		&schema.Activity{Name: "keep"},
	)
	logRepo := newFakeTimeLogRepo(
		&schema.TimeLog{ActivityID: 1, Date: "2026-08-29", Hours: 2},
		&schema.TimeLog{ActivityID: 2, Date: "2026-08-29", Hours: 1},
		&schema.TimeLog{ActivityID: 1, Date: "2026-08-30", Hours: 0.5},
	)
	svc := NewActivityService(actRepo, logRepo, nil)
	ctx := context.Background()

	if err := svc.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	remaining, _ := logRepo.GetAll(ctx)
	if len(remaining) != 1 || remaining[0].ActivityID != 2 {
		t.Fatalf("remaining=%+v, want only activity 2 log", remaining)
	}
	if got, _ := actRepo.GetByID(ctx, 1); got != nil {
		t.Fatalf("activity still present")
	}
}

func TestTimeLogServiceValidation(t *testing.T) {
	actRepo := newFakeActivityRepo(&schema.Activity{Name: "x"})
	svc := NewTimeLogService(newFakeTimeLogRepo(), actRepo, nil)
	ctx := context.Background()

	if _, err := svc.Log(ctx, 1, "2026-08-30", 0); err == nil {
		t.Fatalf("want error for non-positive hours")
	}
	if _, err := svc.Log(ctx, 1, "30/08/2026", 1); err == nil {
		t.Fatalf("want error for bad date format")
	}
	if _, err := svc.Log(ctx, 99, "2026-08-30", 1); err == nil {
		t.Fatalf("want error for missing activity")
	}

	lg, err := svc.Log(ctx, 1, "", 1.5)
	if err != nil {
		t.Fatalf("Log error: %v", err)
	}
	if lg.Date == "" || lg.Hours != 1.5 {
		t.Fatalf("log=%+v, want today's date filled", lg)
	}
}
