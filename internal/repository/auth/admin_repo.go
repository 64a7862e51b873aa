package auth

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cidian/internal/model/auth"
)

// MongoAdminRepo 管理员仓库（MongoDB）
// 使用UUID作为ID，无需ObjectID转换
type MongoAdminRepo struct {
	collection *mongo.Collection
}

// NewMongoAdminRepo 创建管理员仓库
func NewMongoAdminRepo(db *mongo.Database) *MongoAdminRepo {
	var a auth.Admin
	return &MongoAdminRepo{
		collection: db.Collection(a.Collection()),
	}
}

// Create 创建管理员
func (r *MongoAdminRepo) Create(ctx context.Context, admin *auth.Admin) error {
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, admin)
	return mapMongoError(err)
}

// FindByID 根据ID查询
func (r *MongoAdminRepo) FindByID(ctx context.Context, id string) (*auth.Admin, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindByUsername 根据用户名查询
func (r *MongoAdminRepo) FindByUsername(ctx context.Context, username string) (*auth.Admin, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// FindByEmail 根据邮箱查询
func (r *MongoAdminRepo) FindByEmail(ctx context.Context, email string) (*auth.Admin, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindActiveByLogin 根据用户名或邮箱查询启用状态的管理员
func (r *MongoAdminRepo) FindActiveByLogin(ctx context.Context, identifier string) (*auth.Admin, error) {
	return r.findOne(ctx, bson.M{
		"$or": bson.A{
			bson.M{"username": identifier},
			bson.M{"email": identifier},
		},
		"is_active": true,
	})
}

// List 查询管理员列表
func (r *MongoAdminRepo) List(ctx context.Context) ([]*auth.Admin, error) {
	opts := options.Find().SetSort(bson.D{bson.E{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	admins := make([]*auth.Admin, 0)
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

// Update 修改启用状态或角色
func (r *MongoAdminRepo) Update(ctx context.Context, id string, update AdminUpdate) error {
	set := bson.M{"updated_at": time.Now()}
	if update.IsActive != nil {
		set["is_active"] = *update.IsActive
	}
	if update.Role != nil {
		set["role"] = *update.Role
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return mapMongoError(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateLastLoginAt 更新最后登录时间
func (r *MongoAdminRepo) UpdateLastLoginAt(ctx context.Context, id string) error {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"last_login_at": now,
			"updated_at":    now,
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// Delete 删除管理员
func (r *MongoAdminRepo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountActiveSuperAdmins 统计启用状态的超级管理员数量
func (r *MongoAdminRepo) CountActiveSuperAdmins(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"role":      auth.RoleSuperAdmin,
		"is_active": true,
	})
}

func (r *MongoAdminRepo) findOne(ctx context.Context, filter bson.M) (*auth.Admin, error) {
	var admin auth.Admin
	if err := r.collection.FindOne(ctx, filter).Decode(&admin); err != nil {
		return nil, mapMongoError(err)
	}
	return &admin, nil
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
