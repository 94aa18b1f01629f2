package repository

import (
	"context"
	"testing"

	"github.com/cimoun/SkillForge/internal/schema"
	"github.com/cimoun/SkillForge/internal/testutil"
)

func TestActivityRepositorySkillLinksRoundTrip(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	act := schema.NewActivity("Go 圣经", schema.ActivityBook, schema.SkillLinks{
		{SkillID: 1, Weight: 0.7},
		{SkillID: 2, Weight: 0.3},
	})
	if err := repo.Create(ctx, act); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.GetByID(ctx, act.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got == nil || len(got.Skills) != 2 {
		t.Fatalf("got=%+v, want 2 skill links", got)
	}
	if got.Skills[0].SkillID != 1 || got.Skills[0].Weight != 0.7 {
		t.Fatalf("link[0]=%+v, want {1 0.7}", got.Skills[0])
	}
	if got.Status != schema.StatusPlanned {
		t.Fatalf("status=%q, want planned", got.Status)
	}
}

func TestActivityRepositorySaveBatchAfterSweep(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	a1 := schema.NewActivity("a1", schema.ActivityCourse, schema.SkillLinks{{SkillID: 1, Weight: 1}})
	a2 := schema.NewActivity("a2", schema.ActivityPractice, schema.SkillLinks{{SkillID: 1, Weight: 0.5}, {SkillID: 2, Weight: 0.5}})
	_ = repo.Create(ctx, a1)
	_ = repo.Create(ctx, a2)

	all, _ := repo.GetAll(ctx)
	swept := schema.SweepSkillLinks(all, 1)
	if err := repo.SaveBatch(ctx, swept); err != nil {
		t.Fatalf("SaveBatch error: %v", err)
	}

	got1, _ := repo.GetByID(ctx, a1.ID)
	if len(got1.Skills) != 0 {
		t.Fatalf("a1 skills=%+v, want empty after sweep", got1.Skills)
	}
	got2, _ := repo.GetByID(ctx, a2.ID)
	if len(got2.Skills) != 1 || got2.Skills[0].SkillID != 2 {
		t.Fatalf("a2 skills=%+v, want only skill 2", got2.Skills)
	}
}
