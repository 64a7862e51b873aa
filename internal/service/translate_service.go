package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"cidian/internal/ai/chain"
	"cidian/internal/config"
	"cidian/internal/pkg/segment"
)

const (
	defaultChunkSize = 10
	defaultAITimeout = 30 * time.Second

	// ItemSuccess 批量翻译单条状态
	ItemSuccess = "success"
	ItemFailed  = "failed"
)

// TranslateService AI 翻译建议服务
type TranslateService struct {
	chain      *chain.TranslateChain // 未配置 AI 时为空
	segmenter  *segment.Segmenter
	timeout    time.Duration
	chunkSize  int
	chunkDelay time.Duration
}

// NewTranslateService 创建翻译服务，chatModel 为空表示未配置
func NewTranslateService(chatModel model.BaseChatModel, timeout time.Duration, cfg config.TranslateConfig) *TranslateService {
	s := &TranslateService{
		segmenter:  segment.New(),
		timeout:    timeout,
		chunkSize:  cfg.ChunkSize,
		chunkDelay: cfg.ChunkDelay,
	}
	if chatModel != nil {
		s.chain = chain.NewTranslateChain(chatModel)
	}
	if s.timeout <= 0 {
		s.timeout = defaultAITimeout
	}
	if s.chunkSize <= 0 {
		s.chunkSize = defaultChunkSize
	}
	return s
}

// Available 是否已配置 AI
func (s *TranslateService) Available() bool {
	return s.chain != nil
}

func checkInputType(typ string) (string, error) {
	typ = strings.ToLower(strings.TrimSpace(typ))
	if typ != chain.InputChinese && typ != chain.InputEnglish {
		return "", invalid("Type must be either chinese or english")
	}
	return typ, nil
}

// Translate 为单个输入生成词条建议
func (s *TranslateService) Translate(ctx context.Context, input, typ string) (*chain.Suggestion, error) {
	if !s.Available() {
		return nil, ErrAIUnavailable
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, invalid("Input is required")
	}
	typ, err := checkInputType(typ)
	if err != nil {
		return nil, err
	}
	return s.translate(ctx, input, typ)
}

func (s *TranslateService) translate(ctx context.Context, input, typ string) (*chain.Suggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	suggestion, err := s.chain.Run(ctx, input, typ)
	if err != nil {
		if !errors.Is(err, chain.ErrIncompleteSuggestion) {
			log.Error().Err(err).Str("type", typ).Msg("AI translation failed")
		}
		return nil, err
	}
	return suggestion, nil
}

// BatchTranslateItem 批量翻译单条结果
type BatchTranslateItem struct {
	Original string `json:"original"`
	Chinese  string `json:"chinese"`
	English  string `json:"english"`
	Pinyin   string `json:"pinyin"`
	Phonetic string `json:"phonetic"`
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
}

// BatchTranslateResult 批量翻译结果
type BatchTranslateResult struct {
	Results []BatchTranslateItem `json:"results"`
	Summary BatchSummary         `json:"summary"`
}

// BatchTranslate 分批并发翻译，每批 chunkSize 个，批次之间间隔 chunkDelay
func (s *TranslateService) BatchTranslate(ctx context.Context, words []string, typ string) (*BatchTranslateResult, error) {
	if !s.Available() {
		return nil, ErrAIUnavailable
	}
	typ, err := checkInputType(typ)
	if err != nil {
		return nil, err
	}

	words = uniqueWords(words)
	if len(words) == 0 {
		return nil, invalid("Words are required")
	}

	items := make([]BatchTranslateItem, len(words))
	for start := 0; start < len(words); start += s.chunkSize {
		if start > 0 && s.chunkDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.chunkDelay):
			}
		}

		end := min(start+s.chunkSize, len(words))
		var g errgroup.Group
		for i := start; i < end; i++ {
			g.Go(func() error {
				items[i] = s.translateItem(ctx, words[i], typ)
				return nil
			})
		}
		_ = g.Wait()
	}

	result := &BatchTranslateResult{Results: items, Summary: BatchSummary{Total: len(items)}}
	for _, it := range items {
		if it.Status == ItemSuccess {
			result.Summary.Successful++
		} else {
			result.Summary.Failed++
		}
	}

	log.Info().
		Int("total", result.Summary.Total).
		Int("successful", result.Summary.Successful).
		Int("failed", result.Summary.Failed).
		Msg("batch translate completed")
	return result, nil
}

func (s *TranslateService) translateItem(ctx context.Context, word, typ string) BatchTranslateItem {
	item := BatchTranslateItem{Original: word}
	suggestion, err := s.translate(ctx, word, typ)
	if err != nil {
		log.Warn().Err(err).Str("word", word).Msg("batch translate item failed")
		item.Status = ItemFailed
		item.Error = translateErrorMessage(err)
		return item
	}
	item.Chinese = suggestion.Chinese
	item.English = suggestion.English
	item.Pinyin = suggestion.Pinyin
	item.Phonetic = suggestion.Phonetic
	item.Status = ItemSuccess
	return item
}

// translateErrorMessage 单条失败返回给调用方的固定提示，原始错误只写日志
func translateErrorMessage(err error) string {
	switch {
	case errors.Is(err, chain.ErrIncompleteSuggestion):
		return "AI returned an incomplete suggestion"
	case errors.Is(err, context.DeadlineExceeded):
		return "AI request timed out"
	default:
		return "Failed to generate translation"
	}
}

// ExtractWords 将整段文本拆分为词表
// 英文按换行和逗号切分，中文使用分词
func (s *TranslateService) ExtractWords(text, typ string) ([]string, error) {
	typ, err := checkInputType(typ)
	if err != nil {
		return nil, err
	}
	if typ == chain.InputChinese {
		return s.segmenter.Words(text), nil
	}
	return segment.Lines(text), nil
}

// uniqueWords 去除空白、空项和重复项，保持顺序
func uniqueWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
