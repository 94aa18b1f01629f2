package service

import (
	"context"

	"github.com/cimoun/SkillForge/internal/schema"
)

// 仓储接口定义在使用方，测试用假实现替换

type SkillRepository interface {
	GetAll(ctx context.Context) ([]schema.Skill, error)
	GetByID(ctx context.Context, id int64) (*schema.Skill, error)
	Create(ctx context.Context, skill *schema.Skill) error
	Save(ctx context.Context, skill *schema.Skill) error
	Delete(ctx context.Context, id int64) error
}

type ActivityRepository interface {
	GetAll(ctx context.Context) ([]schema.Activity, error)
	GetByID(ctx context.Context, id int64) (*schema.Activity, error)
	Create(ctx context.Context, act *schema.Activity) error
	Save(ctx context.Context, act *schema.Activity) error
	SaveBatch(ctx context.Context, acts []schema.Activity) error
	Delete(ctx context.Context, id int64) error
}

type TimeLogRepository interface {
	GetAll(ctx context.Context) ([]schema.TimeLog, error)
	GetByActivity(ctx context.Context, activityID int64) ([]schema.TimeLog, error)
	Create(ctx context.Context, lg *schema.TimeLog) error
	Delete(ctx context.Context, id int64) error
	DeleteByIDs(ctx context.Context, ids []int64) error
}

// PlanDraftGenerator 生成模型边界，测试用固定文本替身
type PlanDraftGenerator interface {
	IsConfigured() bool
	GenerateDraft(ctx context.Context, goal string) (string, error)
}
