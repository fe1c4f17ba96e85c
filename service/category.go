package service

import (
	"context"

	"monviso/database"
	"monviso/models"

	"gorm.io/gorm"
)

var errCategoryExists = &ConflictError{Field: "name", Message: "同类型下已存在同名类别"}

// CategoryService 用户类别
type CategoryService struct {
	db *gorm.DB
}

// NewCategoryService 创建类别服务
func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List 列出类别，categoryType 为空时返回全部
func (s *CategoryService) List(ctx context.Context, userID uint, categoryType string) ([]models.Category, error) {
	query := s.db.WithContext(ctx).Scopes(database.OwnedBy(userID))
	if categoryType != "" {
		query = query.Where("type = ?", categoryType)
	}
	categories := []models.Category{}
	if err := query.Order("type, name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Create 创建类别，(name, type) 在用户内唯一
func (s *CategoryService) Create(ctx context.Context, userID uint, in CategoryInput) (*models.Category, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)

	c := models.Category{UserID: userID}
	in.apply(&c)
	if err := s.checkUnique(db, userID, 0, c.Name, c.Type); err != nil {
		return nil, err
	}
	if err := db.Create(&c).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, errCategoryExists
		}
		return nil, err
	}
	return &c, nil
}

// Get 获取单个类别
func (s *CategoryService) Get(ctx context.Context, userID, id uint) (*models.Category, error) {
	var c models.Category
	if err := findOwned(s.db.WithContext(ctx), &c, userID, id, "类别"); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update 整体替换类别字段
func (s *CategoryService) Update(ctx context.Context, userID, id uint, in CategoryInput) (*models.Category, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	db := s.db.WithContext(ctx)

	var c models.Category
	if err := findOwned(db, &c, userID, id, "类别"); err != nil {
		return nil, err
	}
	in.apply(&c)
	if err := s.checkUnique(db, userID, c.ID, c.Name, c.Type); err != nil {
		return nil, err
	}
	if err := db.Save(&c).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, errCategoryExists
		}
		return nil, err
	}
	return &c, nil
}

// Delete 删除类别，引用它的支出 category 置空
func (s *CategoryService) Delete(ctx context.Context, userID, id uint) error {
	db := s.db.WithContext(ctx)
	var c models.Category
	if err := findOwned(db, &c, userID, id, "类别"); err != nil {
		return err
	}
	return db.Delete(&c).Error
}

func (s *CategoryService) checkUnique(db *gorm.DB, userID, excludeID uint, name, categoryType string) error {
	query := db.Model(&models.Category{}).
		Scopes(database.OwnedBy(userID)).
		Where("name = ? AND type = ?", name, categoryType)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errCategoryExists
	}
	return nil
}
