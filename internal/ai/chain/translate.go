package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// 输入类型
const (
	InputChinese = "chinese"
	InputEnglish = "english"
)

// ErrIncompleteSuggestion 模型输出缺少字段或无法解析
var ErrIncompleteSuggestion = errors.New("incomplete suggestion")

const translateSystemPrompt = `You are a Chinese-English dictionary assistant.
Given a word or short phrase, reply with ONLY a JSON object of the form
{"chinese": "...", "english": "...", "pinyin": "...", "phonetic": "..."}
where "pinyin" uses tone marks (for example "nǐ hǎo") and "phonetic" is an
approximate English-letter pronunciation of the Chinese (for example "nee how").
Do not add any explanation.`

// Suggestion 词条建议
type Suggestion struct {
	Chinese  string `json:"chinese"`
	English  string `json:"english"`
	Pinyin   string `json:"pinyin"`
	Phonetic string `json:"phonetic"`
}

// TranslateChain 翻译建议链
// 工作流: 输入词 -> Prompt -> ChatModel -> JSON 解析
type TranslateChain struct {
	chatModel model.BaseChatModel
}

// NewTranslateChain 创建翻译建议链
func NewTranslateChain(chatModel model.BaseChatModel) *TranslateChain {
	return &TranslateChain{chatModel: chatModel}
}

// Run 生成单个词条建议，英文统一小写
func (c *TranslateChain) Run(ctx context.Context, input, inputType string) (*Suggestion, error) {
	messages := []*schema.Message{
		schema.SystemMessage(translateSystemPrompt),
		schema.UserMessage(buildTranslatePrompt(input, inputType)),
	}

	resp, err := c.chatModel.Generate(ctx, messages)
	if err != nil {
		return nil, err
	}

	s, err := ParseSuggestion(resp.Content)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// buildTranslatePrompt 构建用户提示词
func buildTranslatePrompt(input, inputType string) string {
	if inputType == InputChinese {
		return fmt.Sprintf("Chinese input: %s\nProvide the English translation, pinyin and phonetic.", input)
	}
	return fmt.Sprintf("English input: %s\nProvide the Chinese translation, pinyin and phonetic.", input)
}

// ParseSuggestion 从模型输出中提取 JSON 对象
// 兼容代码块包裹和前后附带说明文字的输出
func ParseSuggestion(content string) (*Suggestion, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return nil, ErrIncompleteSuggestion
	}

	var s Suggestion
	if err := json.Unmarshal([]byte(content[start:end+1]), &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteSuggestion, err)
	}

	s.Chinese = strings.TrimSpace(s.Chinese)
	s.English = strings.ToLower(strings.TrimSpace(s.English))
	s.Pinyin = strings.TrimSpace(s.Pinyin)
	s.Phonetic = strings.TrimSpace(s.Phonetic)
	if s.Chinese == "" || s.English == "" || s.Pinyin == "" || s.Phonetic == "" {
		return nil, ErrIncompleteSuggestion
	}
	return &s, nil
}
