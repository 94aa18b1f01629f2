package schema

import "time"

// TimeLog 一次时间投入记录
// activity_id 是弱引用；活动删除时由清扫逻辑连带删除。
// 数据量级：千级/年
type TimeLog struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ActivityID int64     `gorm:"index;not null" json:"activity_id"`
	Date       string    `gorm:"size:10;index" json:"date"` // YYYY-MM-DD
	Hours      float64   `gorm:"not null" json:"hours"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (TimeLog) TableName() string {
	return "time_logs"
}
