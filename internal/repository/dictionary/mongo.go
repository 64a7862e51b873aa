package dictionary

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cidian/internal/model/dictionary"
)

// MongoEntryRepo 词条仓库（MongoDB）
// 使用UUID作为ID，无需ObjectID转换
type MongoEntryRepo struct {
	collection *mongo.Collection
}

// NewMongoEntryRepo 创建词条仓库
func NewMongoEntryRepo(db *mongo.Database) *MongoEntryRepo {
	var e dictionary.Entry
	return &MongoEntryRepo{
		collection: db.Collection(e.Collection()),
	}
}

// Create 创建词条
func (r *MongoEntryRepo) Create(ctx context.Context, entry *dictionary.Entry) error {
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, entry)
	return mapMongoError(err)
}

// FindByID 根据ID查询
func (r *MongoEntryRepo) FindByID(ctx context.Context, id string) (*dictionary.Entry, error) {
	var entry dictionary.Entry
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if err != nil {
		return nil, mapMongoError(err)
	}
	return &entry, nil
}

// FindConflict 查找 chinese 或 english 相同的其他词条
func (r *MongoEntryRepo) FindConflict(ctx context.Context, chinese, english, excludeID string) (*dictionary.Entry, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"chinese": chinese},
			bson.M{"english": english},
		},
	}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	var entry dictionary.Entry
	err := r.collection.FindOne(ctx, filter).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Search 前缀搜索
func (r *MongoEntryRepo) Search(ctx context.Context, prefix string) ([]*dictionary.Entry, error) {
	filter := bson.M{}
	if prefix != "" {
		pattern := primitiveRegex("^" + regexp.QuoteMeta(prefix))
		filter["$or"] = bson.A{
			bson.M{"chinese": pattern},
			bson.M{"english": pattern},
			bson.M{"pinyin": pattern},
			bson.M{"phonetic": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{bson.E{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]*dictionary.Entry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Update 更新词条
func (r *MongoEntryRepo) Update(ctx context.Context, entry *dictionary.Entry) error {
	entry.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"chinese":    entry.Chinese,
			"english":    entry.English,
			"pinyin":     entry.Pinyin,
			"phonetic":   entry.Phonetic,
			"status":     entry.Status,
			"updated_at": entry.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": entry.ID}, update)
	if err != nil {
		return mapMongoError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete 删除词条
func (r *MongoEntryRepo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMany 批量删除
func (r *MongoEntryRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// UpdateStatusMany 批量更新审核状态
func (r *MongoEntryRepo) UpdateStatusMany(ctx context.Context, ids []string, status dictionary.Status) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}
	result, err := r.collection.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": ids}}, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// primitiveRegex 大小写无关的正则条件
func primitiveRegex(pattern string) bson.M {
	return bson.M{"$regex": pattern, "$options": "i"}
}

// mapMongoError 将驱动错误映射为仓库错误
func mapMongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	default:
		return err
	}
}
