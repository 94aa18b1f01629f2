package ai

import (
	"context"
	"fmt"
	"strings"
)

// 用户目标描述过长时截断，控制 token 消耗
const maxGoalLen = 2000

// PlanGenerator 把自由文本目标交给模型，换回一份候选计划的原始文本。
// 这里只负责提示词与传输；返回值按不可信数据处理，清洗在 plan 包。
type PlanGenerator struct {
	client     *Client
	maxRetries int
}

// NewPlanGenerator 创建计划生成器
func NewPlanGenerator(client *Client, maxRetries int) *PlanGenerator {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &PlanGenerator{client: client, maxRetries: maxRetries}
}

// IsConfigured 底层客户端是否可用
func (g *PlanGenerator) IsConfigured() bool {
	return g != nil && g.client.IsConfigured()
}

// GenerateDraft 根据目标描述请求一份候选计划，返回模型原始输出
func (g *PlanGenerator) GenerateDraft(ctx context.Context, goal string) (string, error) {
	if !g.client.IsConfigured() {
		return "", fmt.Errorf("生成模型未配置")
	}

	goal = strings.TrimSpace(goal)
	if goal == "" {
		return "", fmt.Errorf("目标描述不能为空")
	}
	if len(goal) > maxGoalLen {
		goal = goal[:maxGoalLen] + "... (truncated)"
	}

	prompt := fmt.Sprintf(`用户想达成以下目标，请为其规划初始的技能与学习活动。

目标：
%s

请用 JSON 格式返回（不要 markdown 代码块）:
{
  "skills": [
    {"name": "技能名", "targetLevel": 3, "priority": 2}
  ],
  "activities": [
    {"name": "活动名", "type": "course", "skillNames": ["技能名"]}
  ]
}

规则：
1. targetLevel 是 1-5 的整数目标掌握度
2. priority 取 1/2/3，1 表示关键技能
3. type 可选值: course/book/practice/project/article
4. 每个活动的 skillNames 只能引用上面 skills 里出现过的名字
5. 技能 3-6 个，活动 4-8 个，宁缺毋滥`, goal)

	messages := []Message{
		{Role: "system", Content: "你是一个学习规划助手，擅长把模糊的成长目标拆解成可落地的技能清单和学习活动。回复必须是纯 JSON，不要 markdown。"},
		{Role: "user", Content: prompt},
	}

	return g.client.ChatWithRetry(ctx, messages, g.maxRetries)
}
