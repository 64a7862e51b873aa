package dictionary

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Entry 词条实体
// 中文与英文各自全局唯一，英文统一小写存储
type Entry struct {
	ID        string    `bson:"_id" json:"id" db:"id"`                  // UUID格式的ID
	Chinese   string    `bson:"chinese" json:"chinese" db:"chinese"`    // 中文
	English   string    `bson:"english" json:"english" db:"english"`    // 英文（小写）
	Pinyin    string    `bson:"pinyin" json:"pinyin" db:"pinyin"`       // 拼音（带声调）
	Phonetic  string    `bson:"phonetic" json:"phonetic" db:"phonetic"` // 英文近似读音
	Status    Status    `bson:"status" json:"status" db:"status"`       // 审核状态
	CreatedAt time.Time `bson:"created_at" json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt" db:"updated_at"`
}

// Collection 返回集合名称
func (e *Entry) Collection() string {
	return "dictionary"
}

// EnsureIndexes 创建和维护索引
// chinese/english 唯一索引是去重的最终保证，服务层预检查只用于返回友好的冲突信息
func (e *Entry) EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	coll := db.Collection(e.Collection())
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{bson.E{Key: "chinese", Value: 1}},
			Options: options.Index().SetName("idx_chinese").SetUnique(true),
		},
		{
			Keys:    bson.D{bson.E{Key: "english", Value: 1}},
			Options: options.Index().SetName("idx_english").SetUnique(true),
		},
		{
			Keys:    bson.D{bson.E{Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_status"),
		},
		{
			Keys:    bson.D{bson.E{Key: "created_at", Value: 1}},
			Options: options.Index().SetName("idx_created_at"),
		},
	}
	_, err := coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// Status 词条审核状态
type Status string

const (
	StatusNotReviewed Status = "NOT_REVIEWED" // 未审核
	StatusApproved    Status = "APPROVED"     // 已通过
	StatusRejected    Status = "REJECTED"     // 已驳回
)

// IsValid 检查状态是否有效
func (s Status) IsValid() bool {
	return s == StatusNotReviewed || s == StatusApproved || s == StatusRejected
}

// String 返回状态字符串
func (s Status) String() string {
	return string(s)
}

// ParseStatus 解析状态字符串（大小写无关）
func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.IsValid()
}

// Fields 词条可编辑字段，用于创建和更新
type Fields struct {
	Chinese  string
	English  string
	Pinyin   string
	Phonetic string
}

// Normalize 去除首尾空白，英文转小写
func (f Fields) Normalize() Fields {
	return Fields{
		Chinese:  strings.TrimSpace(f.Chinese),
		English:  strings.ToLower(strings.TrimSpace(f.English)),
		Pinyin:   strings.TrimSpace(f.Pinyin),
		Phonetic: strings.TrimSpace(f.Phonetic),
	}
}

// Complete 四个字段是否都非空（需先 Normalize）
func (f Fields) Complete() bool {
	return f.Chinese != "" && f.English != "" && f.Pinyin != "" && f.Phonetic != ""
}
