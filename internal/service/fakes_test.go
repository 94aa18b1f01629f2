package service

import (
	"context"

	"github.com/cimoun/SkillForge/internal/schema"
)

type fakeSkillRepo struct {
	items  map[int64]*schema.Skill
	nextID int64
}

func newFakeSkillRepo(skills ...*schema.Skill) *fakeSkillRepo {
	r := &fakeSkillRepo{items: make(map[int64]*schema.Skill), nextID: 1}
	for _, s := range skills {
		cp := *s
		if cp.ID == 0 {
			cp.ID = r.nextID
		}
		if cp.ID >= r.nextID {
			r.nextID = cp.ID + 1
		}
		r.items[cp.ID] = &cp
	}
	return r
}

func (r *fakeSkillRepo) GetAll(ctx context.Context) ([]schema.Skill, error) {
	out := make([]schema.Skill, 0, len(r.items))
	for id := int64(1); id < r.nextID; id++ {
		if s, ok := r.items[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}
func (r *fakeSkillRepo) GetByID(ctx context.Context, id int64) (*schema.Skill, error) {
	if s, ok := r.items[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}
func (r *fakeSkillRepo) Create(ctx context.Context, skill *schema.Skill) error {
	skill.ID = r.nextID
	r.nextID++
	cp := *skill
	r.items[cp.ID] = &cp
	return nil
}
func (r *fakeSkillRepo) Save(ctx context.Context, skill *schema.Skill) error {
	cp := *skill
	r.items[cp.ID] = &cp
	return nil
}
func (r *fakeSkillRepo) Delete(ctx context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

type fakeActivityRepo struct {
	items      map[int64]*schema.Activity
	nextID     int64
	savedBatch []schema.Activity
}

func newFakeActivityRepo(acts ...*schema.Activity) *fakeActivityRepo {
	r := &fakeActivityRepo{items: make(map[int64]*schema.Activity), nextID: 1}
	for _, a := range acts {
		cp := *a
		if cp.ID == 0 {
			cp.ID = r.nextID
		}
		if cp.ID >= r.nextID {
			r.nextID = cp.ID + 1
		}
		r.items[cp.ID] = &cp
	}
	return r
}

func (r *fakeActivityRepo) GetAll(ctx context.Context) ([]schema.Activity, error) {
	out := make([]schema.Activity, 0, len(r.items))
	for id := int64(1); id < r.nextID; id++ {
		if a, ok := r.items[id]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}
func (r *fakeActivityRepo) GetByID(ctx context.Context, id int64) (*schema.Activity, error) {
	if a, ok := r.items[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}
func (r *fakeActivityRepo) Create(ctx context.Context, act *schema.Activity) error {
	act.ID = r.nextID
	r.nextID++
	cp := *act
	r.items[cp.ID] = &cp
	return nil
}
func (r *fakeActivityRepo) Save(ctx context.Context, act *schema.Activity) error {
	cp := *act
	r.items[cp.ID] = &cp
	return nil
}
func (r *fakeActivityRepo) SaveBatch(ctx context.Context, acts []schema.Activity) error {
	r.savedBatch = append(r.savedBatch, acts...)
	for _, a := range acts {
		cp := a
		r.items[cp.ID] = &cp
	}
	return nil
}
func (r *fakeActivityRepo) Delete(ctx context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

type fakeTimeLogRepo struct {
	items  map[int64]*schema.TimeLog
	nextID int64
}

func newFakeTimeLogRepo(logs ...*schema.TimeLog) *fakeTimeLogRepo {
	r := &fakeTimeLogRepo{items: make(map[int64]*schema.TimeLog), nextID: 1}
	for _, lg := range logs {
		cp := *lg
		if cp.ID == 0 {
			cp.ID = r.nextID
		}
		if cp.ID >= r.nextID {
			r.nextID = cp.ID + 1
		}
		r.items[cp.ID] = &cp
	}
	return r
}

func (r *fakeTimeLogRepo) GetAll(ctx context.Context) ([]schema.TimeLog, error) {
	out := make([]schema.TimeLog, 0, len(r.items))
	for id := int64(1); id < r.nextID; id++ {
		if lg, ok := r.items[id]; ok {
			out = append(out, *lg)
		}
	}
	return out, nil
}
func (r *fakeTimeLogRepo) GetByActivity(ctx context.Context, activityID int64) ([]schema.TimeLog, error) {
	all, _ := r.GetAll(ctx)
	out := make([]schema.TimeLog, 0)
	for _, lg := range all {
		if lg.ActivityID == activityID {
			out = append(out, lg)
		}
	}
	return out, nil
}
func (r *fakeTimeLogRepo) Create(ctx context.Context, lg *schema.TimeLog) error {
	lg.ID = r.nextID
	r.nextID++
	cp := *lg
	r.items[cp.ID] = &cp
	return nil
}
func (r *fakeTimeLogRepo) Delete(ctx context.Context, id int64) error {
	delete(r.items, id)
	return nil
}
func (r *fakeTimeLogRepo) DeleteByIDs(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		delete(r.items, id)
	}
	return nil
}

// fakeGenerator 生成模型替身，返回固定文本
type fakeGenerator struct {
	raw string
	err error
}

func (g *fakeGenerator) IsConfigured() bool { return true }
func (g *fakeGenerator) GenerateDraft(ctx context.Context, goal string) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.raw, nil
}
