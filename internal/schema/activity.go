package schema

import (
	"strings"
	"time"
)

// 活动类型
const (
	ActivityCourse   = "course"
	ActivityBook     = "book"
	ActivityPractice = "practice"
	ActivityProject  = "project"
	ActivityArticle  = "article"
)

// 活动状态
const (
	StatusPlanned   = "planned"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Activity 学习活动（课程/书/练习/项目/文章）
// 技能边以 JSON 列内嵌，时间记录通过 activity_id 弱引用本行。
type Activity struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string     `gorm:"size:200;not null" json:"name"`
	Type      string     `gorm:"size:20;index" json:"type"`
	Status    string     `gorm:"size:20;index" json:"status"`
	Skills    SkillLinks `gorm:"type:text" json:"skills"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (Activity) TableName() string {
	return "activities"
}

// NewActivity 创建活动，初始状态 planned
func NewActivity(name, typ string, links SkillLinks) *Activity {
	return &Activity{
		Name:   strings.TrimSpace(name),
		Type:   NormalizeActivityType(typ),
		Status: StatusPlanned,
		Skills: links.Clone(),
	}
}

// NormalizeActivityType 非法类型回落到 course
func NormalizeActivityType(typ string) string {
	switch typ {
	case ActivityCourse, ActivityBook, ActivityPractice, ActivityProject, ActivityArticle:
		return typ
	default:
		return ActivityCourse
	}
}

// NextStatus 状态循环 planned→active→completed→planned
func NextStatus(status string) string {
	switch status {
	case StatusPlanned:
		return StatusActive
	case StatusActive:
		return StatusCompleted
	default:
		return StatusPlanned
	}
}
