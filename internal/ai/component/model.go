package component

import (
	"context"
	"errors"
	"fmt"

	arkext "github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"cidian/internal/config"
)

// ErrNotConfigured 未配置 API Key
var ErrNotConfigured = errors.New("AI provider is not configured")

const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultArkModel    = "doubao-seed-1-6-flash-250615"
	defaultArkBaseURL  = "https://ark.cn-beijing.volces.com/api/v3"
)

// NewChatModel 创建 ChatModel
// 支持 Provider: openai, azure, ark
func NewChatModel(ctx context.Context, cfg *config.AIConfig) (model.BaseChatModel, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	switch cfg.Provider {
	case "openai", "":
		return newOpenAIChatModel(ctx, cfg, false)
	case "azure":
		return newOpenAIChatModel(ctx, cfg, true)
	case "ark":
		return newArkChatModel(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.Provider)
	}
}

// sampling 从配置中提取采样参数，零值表示使用模型默认值
func sampling(opts config.AIOptionsConfig) (temperature, topP *float32, maxTokens *int) {
	if opts.Temperature > 0 {
		t := float32(opts.Temperature)
		temperature = &t
	}
	if opts.TopP > 0 {
		p := float32(opts.TopP)
		topP = &p
	}
	if opts.MaxTokens > 0 {
		n := opts.MaxTokens
		maxTokens = &n
	}
	return
}

// newOpenAIChatModel 创建 OpenAI / Azure OpenAI ChatModel
func newOpenAIChatModel(ctx context.Context, cfg *config.AIConfig, byAzure bool) (model.BaseChatModel, error) {
	modelName := cfg.Model
	if modelName == "" {
		modelName = defaultOpenAIModel
	}

	temperature, topP, maxTokens := sampling(cfg.Options)
	modelCfg := &openai.ChatModelConfig{
		Model:       modelName,
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		ByAzure:     byAzure,
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   maxTokens,
	}

	return openai.NewChatModel(ctx, modelCfg)
}

// newArkChatModel 创建 Ark ChatModel（使用 eino-ext 模块）
func newArkChatModel(ctx context.Context, cfg *config.AIConfig) (model.BaseChatModel, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultArkBaseURL
	}
	modelName := cfg.Model
	if modelName == "" {
		modelName = defaultArkModel
	}

	temperature, topP, maxTokens := sampling(cfg.Options)
	modelCfg := &arkext.ChatModelConfig{
		Model:       modelName,
		APIKey:      cfg.APIKey,
		BaseURL:     baseURL,
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   maxTokens,
	}

	return arkext.NewChatModel(ctx, modelCfg)
}
