package report

import (
	"context"
	"fmt"

	"github.com/cuihengjie1982/Director-OS-v2.0/internal/dashboard/entity"
	"github.com/sashabaranov/go-openai"
)

// ErrMissingAPIKey 未配置API Key时的用户可见提示
// 按约定直接作为报告正文展示，不作为错误抛出
const ErrMissingAPIKey = "错误: 未提供 API Key。请配置 OPENAI_API_KEY。"

const systemPrompt = `你是一位资深的 BPO 运营总监。
请分析提供的 JSON 数据（为了安全已进行脱敏处理）。
项目代号（如 Project_Alpha）代替了真实的客户名称。

请用中文生成一份简明扼要的高管周报（Markdown 格式）：
1. **财务综述**：总结整体目标达成情况。
2. **风险评估**：重点关注 "riskFlag": true 或营收达成率低 (<95%) 的项目。
3. **运营亮点**：提及表现优秀的项目。
4. **行动建议**：针对风险点提出 2-3 条战略性建议。

保持专业、直接、以结果为导向。`

// Generator 周报生成器
type Generator struct {
	client      *openai.Client
	model       string
	temperature float32
	apiKey      string
}

// NewGenerator 创建周报生成器
// apiKey为空时不会构造客户端，Generate直接返回提示文本
func NewGenerator(apiKey, model string, temperature float32) *Generator {
	g := &Generator{
		model:       model,
		temperature: temperature,
		apiKey:      apiKey,
	}
	if apiKey != "" {
		g.client = openai.NewClient(apiKey)
	}
	return g
}

// Generate 生成脱敏高管周报（Markdown文本）
func (g *Generator) Generate(ctx context.Context, projects []entity.Project, metrics []entity.WeeklyMetric) (string, error) {
	if g.apiKey == "" {
		return ErrMissingAPIKey, nil
	}

	payload, err := MaskJSON(projects, metrics)
	if err != nil {
		return "", err
	}

	req := openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: g.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "这是本周的脱敏运营数据: " + payload},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "未生成报告。", nil
	}
	return resp.Choices[0].Message.Content, nil
}
