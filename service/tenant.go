package service

import (
	"errors"
	"strings"

	"monviso/database"

	"gorm.io/gorm"
)

// findOwned 按 (id, user_id) 加载一条记录
// 记录不存在与属于其他用户返回同一个 NotFoundError
func findOwned(db *gorm.DB, dest interface{}, userID, id uint, resource string) error {
	err := db.Scopes(database.OwnedBy(userID)).First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: resource}
	}
	return err
}

// isUniqueConstraintError 判断是否为唯一约束冲突（MySQL 1062 / PostgreSQL 23505）
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
