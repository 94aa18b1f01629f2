package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// SkillLink 活动到技能的带权边：weight 表示该活动投入时间中
// 归属于此技能成长的比例，期望范围 (0,1]。
// skill_id 是弱引用——技能删除后由清扫逻辑负责摘除悬空边。
type SkillLink struct {
	SkillID int64   `json:"skill_id"`
	Weight  float64 `json:"weight"`
}

// SkillLinks 以 JSON 文本列内嵌存储在活动行内。
// 同一 skill_id 允许出现多条边，计算时按多重边累加。
type SkillLinks []SkillLink

// Value 实现 driver.Valuer 接口
func (l SkillLinks) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan 实现 sql.Scanner 接口
func (l *SkillLinks) Scan(value interface{}) error {
	if value == nil {
		*l = SkillLinks{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("unsupported skill links column type")
	}

	if len(bytes) == 0 {
		*l = SkillLinks{}
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// Clone 返回独立副本，保证纯变换不共享底层数组
func (l SkillLinks) Clone() SkillLinks {
	if l == nil {
		return nil
	}
	return append(SkillLinks(nil), l...)
}

// Has 是否存在指向某技能的边
func (l SkillLinks) Has(skillID int64) bool {
	for _, link := range l {
		if link.SkillID == skillID {
			return true
		}
	}
	return false
}
