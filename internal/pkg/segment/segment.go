package segment

import (
	"strings"
	"sync"
	"unicode"

	"github.com/go-ego/gse"
	"github.com/rs/zerolog/log"
)

// Segmenter 中文分词器，用于将整段中文拆分为词表
type Segmenter struct {
	once sync.Once
	seg  *gse.Segmenter
}

// New 创建分词器，词典在首次使用时加载
func New() *Segmenter {
	return &Segmenter{}
}

func (s *Segmenter) load() {
	s.once.Do(func() {
		seg, err := gse.New()
		if err != nil {
			// 降级到按字符切分
			log.Warn().Err(err).Msg("load gse dictionary failed, falling back to per-rune split")
			return
		}
		s.seg = &seg
	})
}

// Words 分词并去除标点和空白，保持出现顺序并去重
func (s *Segmenter) Words(text string) []string {
	s.load()

	var tokens []string
	if s.seg != nil {
		tokens = s.seg.Cut(text, false)
	} else {
		for _, r := range text {
			tokens = append(tokens, string(r))
		}
	}

	seen := make(map[string]struct{}, len(tokens))
	words := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" || !hasWordRune(tok) {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		words = append(words, tok)
	}
	return words
}

// Lines 按换行、逗号（含全角）切分英文词表，保持顺序并去重
func Lines(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ',' || r == '，' || r == ';' || r == '；'
	})

	seen := make(map[string]struct{}, len(fields))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		words = append(words, f)
	}
	return words
}

func hasWordRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
