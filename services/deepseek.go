package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

type DeepseekClient struct {
	DsChat llms.Model
}

func NewDeepseekClient(apiKey, apiEndpoint string) (*DeepseekClient, error) {
	// 陪伴回复是纯文本，不用 JSON 输出模式
	v3, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel("deepseek/deepseek-v3"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Deepseek client: %w", err)
	}

	return &DeepseekClient{
		DsChat: v3,
	}, nil
}
