package dictionary

import (
	"cidian/internal/service"
)

// Handler 词典处理器
type Handler struct {
	dictionaryService *service.DictionaryService
}

// NewHandler 创建词典处理器
func NewHandler(dictionaryService *service.DictionaryService) *Handler {
	return &Handler{dictionaryService: dictionaryService}
}

// EntryRequest 创建/更新词条请求
type EntryRequest struct {
	Chinese  string `json:"chinese"`
	English  string `json:"english"`
	Pinyin   string `json:"pinyin"`
	Phonetic string `json:"phonetic"`
	Status   string `json:"status,omitempty"` // 可选：NOT_REVIEWED, APPROVED, REJECTED
}

func (r EntryRequest) input() service.EntryInput {
	return service.EntryInput{
		Chinese:  r.Chinese,
		English:  r.English,
		Pinyin:   r.Pinyin,
		Phonetic: r.Phonetic,
		Status:   r.Status,
	}
}

// IDsRequest 批量操作的ID列表
type IDsRequest struct {
	IDs []string `json:"ids"`
}
