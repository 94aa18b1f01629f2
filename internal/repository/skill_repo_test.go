package repository

import (
	"context"
	"testing"

	"github.com/cimoun/SkillForge/internal/schema"
	"github.com/cimoun/SkillForge/internal/testutil"
)

func TestSkillRepositoryCreateAndGet(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	skill := schema.NewSkill("Go", 4, schema.PriorityCritical)
	if err := repo.Create(ctx, skill); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if skill.ID == 0 {
		t.Fatalf("id not assigned")
	}

	got, err := repo.GetByID(ctx, skill.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got == nil || got.Name != "Go" || got.TargetLevel != 4 || got.Priority != 1 {
		t.Fatalf("got=%+v, want Go target 4 priority 1", got)
	}
}

func TestSkillRepositoryGetByIDMissing(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewSkillRepository(db)

	got, err := repo.GetByID(context.Background(), 999)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got != nil {
		t.Fatalf("got=%+v, want nil", got)
	}
}

func TestSkillRepositoryGetAllOrdering(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	_ = repo.Create(ctx, schema.NewSkill("次要", 3, schema.PriorityLow))
	_ = repo.Create(ctx, schema.NewSkill("关键", 3, schema.PriorityCritical))

	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll error: %v", err)
	}
	if len(all) != 2 || all[0].Name != "关键" {
		t.Fatalf("all=%+v, want 关键 first", all)
	}
}

func TestSkillRepositoryDelete(t *testing.T) {
	db := testutil.OpenTestDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	skill := schema.NewSkill("Go", 3, 2)
	_ = repo.Create(ctx, skill)
	if err := repo.Delete(ctx, skill.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	count, _ := repo.Count(ctx)
	if count != 0 {
		t.Fatalf("count=%d, want 0", count)
	}
}
