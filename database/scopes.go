package database

import "gorm.io/gorm"

// OwnedBy 限定查询为指定用户名下的数据
// 所有按用户隔离的查询都必须经过这里
func OwnedBy(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
