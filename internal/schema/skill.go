package schema

import (
	"strings"
	"time"
)

// 技能优先级：1=关键，2=普通，3=次要
const (
	PriorityCritical = 1
	PriorityNormal   = 2
	PriorityLow      = 3
)

// 目标等级允许区间
const (
	MinTargetLevel     = 1
	MaxTargetLevel     = 5
	DefaultTargetLevel = 3
)

// Skill 用户定义的技能
// 数据量级：十级
type Skill struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	TargetLevel int       `gorm:"default:3" json:"target_level"` // 目标等级 1-5
	Priority    int       `gorm:"default:2;index" json:"priority"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (Skill) TableName() string {
	return "skills"
}

// NewSkill 创建技能（字段越界时收敛到合法值；targetLevel 0 视为未设置）
func NewSkill(name string, targetLevel, priority int) *Skill {
	if targetLevel == 0 {
		targetLevel = DefaultTargetLevel
	}
	return &Skill{
		Name:        strings.TrimSpace(name),
		TargetLevel: ClampTargetLevel(targetLevel),
		Priority:    NormalizePriority(priority),
	}
}

// ClampTargetLevel 将目标等级收敛到 [1,5]
func ClampTargetLevel(v int) int {
	if v < MinTargetLevel {
		return MinTargetLevel
	}
	if v > MaxTargetLevel {
		return MaxTargetLevel
	}
	return v
}

// NormalizePriority 优先级只接受 1/2/3，其余一律回落到普通
func NormalizePriority(v int) int {
	switch v {
	case PriorityCritical, PriorityNormal, PriorityLow:
		return v
	default:
		return PriorityNormal
	}
}
