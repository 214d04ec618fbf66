package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用数据访问基类，各 DAO 内嵌使用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// IsExist 是否存在满足条件的记录
func (r Repo[T]) IsExist(ctx context.Context, query string, args ...any) (bool, error) {
	var model T
	var count int64
	err := r.Db.WithContext(ctx).Model(&model).Where(query, args...).Count(&count).Error
	return count > 0, err
}

// Transaction 事务
func (r Repo[T]) Transaction(ctx context.Context, fn func(*gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(fn)
}
