package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"cidian/internal/model/dictionary"
	"cidian/internal/pkg/id"
	"cidian/internal/pkg/storage"
	dictRepo "cidian/internal/repository/dictionary"
)

const (
	msgFieldsRequired = "Chinese, English, Pinyin and Phonetic are required"
	msgEntryExists    = "Entry with this Chinese or English word already exists"
	msgOtherExists    = "Another entry with this Chinese or English word already exists"
	msgInvalidStatus  = "Valid status is required (NOT_REVIEWED, APPROVED, REJECTED)"
	msgIDsRequired    = "IDs array is required and must not be empty"

	snapshotURLExpiry = time.Hour
)

// SearchCache 搜索结果缓存，写操作后整体失效
// Get 返回读取时的缓存代数，Set 必须使用同一代数写入
type SearchCache interface {
	Get(ctx context.Context, query string) (entries []*dictionary.Entry, gen int64, ok bool)
	Set(ctx context.Context, gen int64, query string, entries []*dictionary.Entry)
	Invalidate(ctx context.Context)
}

// EntryInput 创建/更新词条的输入，Status 为空表示默认值或保持不变
type EntryInput struct {
	Chinese  string `json:"chinese"`
	English  string `json:"english"`
	Pinyin   string `json:"pinyin"`
	Phonetic string `json:"phonetic"`
	Status   string `json:"status,omitempty"`
}

func (in EntryInput) fields() dictionary.Fields {
	return dictionary.Fields{
		Chinese:  in.Chinese,
		English:  in.English,
		Pinyin:   in.Pinyin,
		Phonetic: in.Phonetic,
	}.Normalize()
}

// DictionaryService 词典服务：搜索、增删改、批量操作与导出
type DictionaryService struct {
	repo    dictRepo.EntryRepo
	cache   SearchCache     // 可为空
	storage storage.Storage // 可为空，快照导出需要
}

// NewDictionaryService 创建词典服务
func NewDictionaryService(repo dictRepo.EntryRepo, cache SearchCache, store storage.Storage) *DictionaryService {
	return &DictionaryService{
		repo:    repo,
		cache:   cache,
		storage: store,
	}
}

// Search 前缀搜索，查询为空时返回全部词条
func (s *DictionaryService) Search(ctx context.Context, query string) ([]*dictionary.Entry, error) {
	query = strings.TrimSpace(query)

	var gen int64
	if s.cache != nil {
		entries, g, ok := s.cache.Get(ctx, query)
		if ok {
			return entries, nil
		}
		gen = g
	}

	entries, err := s.repo.Search(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("failed to search dictionary")
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, gen, query, entries)
	}
	return entries, nil
}

// Create 创建词条
func (s *DictionaryService) Create(ctx context.Context, in EntryInput) (*dictionary.Entry, error) {
	entry, err := s.create(ctx, in)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return entry, nil
}

func (s *DictionaryService) create(ctx context.Context, in EntryInput) (*dictionary.Entry, error) {
	f := in.fields()
	if !f.Complete() {
		return nil, invalid(msgFieldsRequired)
	}

	status := dictionary.StatusNotReviewed
	if in.Status != "" {
		st, ok := dictionary.ParseStatus(in.Status)
		if !ok {
			return nil, invalid(msgInvalidStatus)
		}
		status = st
	}

	if err := s.checkConflict(ctx, f, "", msgEntryExists); err != nil {
		return nil, err
	}

	entry := &dictionary.Entry{
		ID:       id.New(),
		Chinese:  f.Chinese,
		English:  f.English,
		Pinyin:   f.Pinyin,
		Phonetic: f.Phonetic,
		Status:   status,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		if errors.Is(err, dictRepo.ErrDuplicate) {
			// 并发写入时预检查可能通过，以唯一约束为准
			return nil, s.conflictAfterDuplicate(ctx, f, "", msgEntryExists)
		}
		log.Error().Err(err).Str("chinese", f.Chinese).Msg("failed to create dictionary entry")
		return nil, err
	}
	return entry, nil
}

// Update 更新词条，Status 为空时保持原状态
func (s *DictionaryService) Update(ctx context.Context, entryID string, in EntryInput) (*dictionary.Entry, error) {
	entryID, ok := id.Canonical(entryID)
	if !ok {
		return nil, invalid("Invalid entry id")
	}

	f := in.fields()
	if !f.Complete() {
		return nil, invalid(msgFieldsRequired)
	}

	entry, err := s.repo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, dictRepo.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	if in.Status != "" {
		st, ok := dictionary.ParseStatus(in.Status)
		if !ok {
			return nil, invalid(msgInvalidStatus)
		}
		entry.Status = st
	}

	if err := s.checkConflict(ctx, f, entryID, msgOtherExists); err != nil {
		return nil, err
	}

	entry.Chinese = f.Chinese
	entry.English = f.English
	entry.Pinyin = f.Pinyin
	entry.Phonetic = f.Phonetic

	if err := s.repo.Update(ctx, entry); err != nil {
		switch {
		case errors.Is(err, dictRepo.ErrNotFound):
			return nil, ErrEntryNotFound
		case errors.Is(err, dictRepo.ErrDuplicate):
			return nil, s.conflictAfterDuplicate(ctx, f, entryID, msgOtherExists)
		}
		log.Error().Err(err).Str("entry_id", entryID).Msg("failed to update dictionary entry")
		return nil, err
	}

	s.invalidate(ctx)
	return entry, nil
}

// Delete 删除词条并返回被删除的记录
func (s *DictionaryService) Delete(ctx context.Context, entryID string) (*dictionary.Entry, error) {
	entryID, ok := id.Canonical(entryID)
	if !ok {
		return nil, invalid("Invalid entry id")
	}

	entry, err := s.repo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, dictRepo.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	if err := s.repo.Delete(ctx, entryID); err != nil {
		if errors.Is(err, dictRepo.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		log.Error().Err(err).Str("entry_id", entryID).Msg("failed to delete dictionary entry")
		return nil, err
	}

	s.invalidate(ctx)
	return entry, nil
}

// BatchItemError 批量创建中单条失败的原因
type BatchItemError struct {
	Index int        `json:"index"`
	Entry EntryInput `json:"entry"`
	Error string     `json:"error"`
}

// BatchSummary 批量创建统计
type BatchSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// BatchCreateResult 批量创建结果
type BatchCreateResult struct {
	Created []*dictionary.Entry `json:"created"`
	Errors  []BatchItemError    `json:"errors"`
	Summary BatchSummary        `json:"summary"`
}

// BatchCreate 逐条创建，单条失败不影响其他条目
func (s *DictionaryService) BatchCreate(ctx context.Context, inputs []EntryInput) (*BatchCreateResult, error) {
	if len(inputs) == 0 {
		return nil, invalid("Entries array is required and must not be empty")
	}

	result := &BatchCreateResult{
		Created: make([]*dictionary.Entry, 0, len(inputs)),
		Errors:  make([]BatchItemError, 0),
	}

	for i, in := range inputs {
		entry, err := s.create(ctx, in)
		if err != nil {
			result.Errors = append(result.Errors, BatchItemError{
				Index: i,
				Entry: in,
				Error: batchErrorMessage(err),
			})
			continue
		}
		result.Created = append(result.Created, entry)
	}

	result.Summary = BatchSummary{
		Total:      len(inputs),
		Successful: len(result.Created),
		Failed:     len(result.Errors),
	}

	if len(result.Created) > 0 {
		s.invalidate(ctx)
	}

	log.Info().
		Int("total", result.Summary.Total).
		Int("successful", result.Summary.Successful).
		Int("failed", result.Summary.Failed).
		Msg("batch create completed")
	return result, nil
}

func batchErrorMessage(err error) string {
	var ve *ValidationError
	var ce *EntryConflictError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.As(err, &ce):
		return ce.Message
	default:
		return "Failed to process entry"
	}
}

// BatchDeleteResult 批量删除结果
type BatchDeleteResult struct {
	DeletedCount int64    `json:"deletedCount"`
	RequestedIDs []string `json:"requestedIds"`
}

// BatchDelete 批量删除，非法ID被忽略，不存在的ID计数为0
func (s *DictionaryService) BatchDelete(ctx context.Context, ids []string) (*BatchDeleteResult, error) {
	if len(ids) == 0 {
		return nil, invalid(msgIDsRequired)
	}

	valid := id.Filter(ids)
	if len(valid) == 0 {
		return nil, invalid("Valid UUID IDs are required")
	}

	n, err := s.repo.DeleteMany(ctx, valid)
	if err != nil {
		log.Error().Err(err).Int("ids", len(valid)).Msg("failed to batch delete dictionary entries")
		return nil, err
	}

	if n > 0 {
		s.invalidate(ctx)
	}
	return &BatchDeleteResult{DeletedCount: n, RequestedIDs: valid}, nil
}

// StatusUpdateResult 批量更新状态结果
type StatusUpdateResult struct {
	UpdatedCount int64             `json:"updatedCount"`
	Status       dictionary.Status `json:"status"`
	IDs          []string          `json:"ids"`
}

// UpdateStatus 批量更新审核状态
func (s *DictionaryService) UpdateStatus(ctx context.Context, ids []string, status string) (*StatusUpdateResult, error) {
	if len(ids) == 0 {
		return nil, invalid(msgIDsRequired)
	}
	st, ok := dictionary.ParseStatus(status)
	if !ok {
		return nil, invalid(msgInvalidStatus)
	}

	valid := id.Filter(ids)
	if len(valid) == 0 {
		return nil, invalid("Valid UUID IDs are required")
	}

	n, err := s.repo.UpdateStatusMany(ctx, valid, st)
	if err != nil {
		log.Error().Err(err).Int("ids", len(valid)).Str("status", st.String()).Msg("failed to update entry status")
		return nil, err
	}

	if n > 0 {
		s.invalidate(ctx)
	}
	return &StatusUpdateResult{UpdatedCount: n, Status: st, IDs: valid}, nil
}

var csvHeader = []string{"id", "chinese", "english", "pinyin", "phonetic", "status", "created_at", "updated_at"}

// ExportCSV 将全部词条写为 CSV，返回写入的词条数量
func (s *DictionaryService) ExportCSV(ctx context.Context, w io.Writer) (int, error) {
	entries, err := s.repo.Search(ctx, "")
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, err
	}
	for _, e := range entries {
		record := []string{
			e.ID, e.Chinese, e.English, e.Pinyin, e.Phonetic, e.Status.String(),
			e.CreatedAt.UTC().Format(time.RFC3339), e.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return 0, err
		}
	}
	cw.Flush()
	return len(entries), cw.Error()
}

// SnapshotResult 快照导出结果
type SnapshotResult struct {
	Key         string `json:"key"`
	Count       int    `json:"count"`
	URL         string `json:"url"`
	DownloadURL string `json:"downloadUrl"`
	Storage     string `json:"storage"`
}

// Snapshot 导出 CSV 快照并上传到存储
func (s *DictionaryService) Snapshot(ctx context.Context) (*SnapshotResult, error) {
	if s.storage == nil {
		return nil, ErrStorageUnavailable
	}

	var buf bytes.Buffer
	count, err := s.ExportCSV(ctx, &buf)
	if err != nil {
		return nil, err
	}

	key, err := s.snapshotKey(ctx, time.Now())
	if err != nil {
		return nil, err
	}
	url, err := s.storage.Upload(ctx, key, &buf, "text/csv")
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload dictionary snapshot")
		return nil, err
	}

	downloadURL, err := s.storage.GetPresignedDownloadURL(ctx, key, snapshotURLExpiry)
	if err != nil {
		return nil, err
	}

	log.Info().Str("key", key).Int("count", count).Msg("dictionary snapshot exported")
	return &SnapshotResult{
		Key:         key,
		Count:       count,
		URL:         url,
		DownloadURL: downloadURL,
		Storage:     s.storage.GetStorageType(),
	}, nil
}

// snapshotKey 生成快照对象键，同一毫秒内已存在时追加随机后缀，避免覆盖
func (s *DictionaryService) snapshotKey(ctx context.Context, now time.Time) (string, error) {
	base := "exports/dictionary-" + now.UTC().Format("20060102T150405.000Z")
	key := base + ".csv"
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to check snapshot key")
		return "", err
	}
	if exists {
		key = fmt.Sprintf("%s-%s.csv", base, id.New()[:8])
	}
	return key, nil
}

// checkConflict 预检查重复，仅用于返回已存在的词条
func (s *DictionaryService) checkConflict(ctx context.Context, f dictionary.Fields, excludeID, msg string) error {
	existing, err := s.repo.FindConflict(ctx, f.Chinese, f.English, excludeID)
	if err != nil {
		return err
	}
	if existing != nil {
		return &EntryConflictError{Message: msg, Existing: existing}
	}
	return nil
}

func (s *DictionaryService) conflictAfterDuplicate(ctx context.Context, f dictionary.Fields, excludeID, msg string) error {
	existing, _ := s.repo.FindConflict(ctx, f.Chinese, f.English, excludeID)
	return &EntryConflictError{Message: msg, Existing: existing}
}

func (s *DictionaryService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
