package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:254;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"`
	FirstName string    `json:"first_name" gorm:"size:150"`
	LastName  string    `json:"last_name" gorm:"size:150"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 删除用户时级联删除其名下全部数据
	Profile       *UserProfile   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Categories    []Category     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Incomes       []Income       `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Expenses      []Expense      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	SavingsGoals  []SavingsGoal  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Transactions  []Transaction  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	RefreshTokens []RefreshToken `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}

// PublicUser 对外暴露的用户字段
type PublicUser struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Public 返回用户的公开字段
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
