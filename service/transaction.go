package service

import (
	"context"

	"monviso/database"
	"monviso/models"

	"gorm.io/gorm"
)

// TransactionFilter 列表与导出的筛选条件，零值表示不限
type TransactionFilter struct {
	StartDate *models.Date
	EndDate   *models.Date
	Type      string
}

// TransactionService 交易流水
type TransactionService struct {
	db *gorm.DB
}

// NewTransactionService 创建交易服务
func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

// List 按日期倒序、创建时间倒序返回当前用户的交易
func (s *TransactionService) List(ctx context.Context, userID uint, f TransactionFilter) ([]models.Transaction, error) {
	query := s.db.WithContext(ctx).Scopes(database.OwnedBy(userID))
	if f.StartDate != nil {
		query = query.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		query = query.Where("date <= ?", *f.EndDate)
	}
	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}

	transactions := []models.Transaction{}
	if err := query.Order(models.TransactionOrder).Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

// Create 创建交易，归属强制为当前用户
func (s *TransactionService) Create(ctx context.Context, userID uint, in TransactionInput) (*models.Transaction, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	t := models.Transaction{UserID: userID}
	in.apply(&t)
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Get 获取单条交易
func (s *TransactionService) Get(ctx context.Context, userID, id uint) (*models.Transaction, error) {
	var t models.Transaction
	if err := findOwned(s.db.WithContext(ctx), &t, userID, id, "交易"); err != nil {
		return nil, err
	}
	return &t, nil
}

// Update 整体替换可写字段
func (s *TransactionService) Update(ctx context.Context, userID, id uint, in TransactionInput) (*models.Transaction, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)
	var t models.Transaction
	if err := findOwned(db, &t, userID, id, "交易"); err != nil {
		return nil, err
	}
	in.apply(&t)
	if err := db.Save(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete 硬删除
func (s *TransactionService) Delete(ctx context.Context, userID, id uint) error {
	db := s.db.WithContext(ctx)
	var t models.Transaction
	if err := findOwned(db, &t, userID, id, "交易"); err != nil {
		return err
	}
	return db.Delete(&t).Error
}
