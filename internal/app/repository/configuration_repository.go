package repository

import (
	"errors"

	"github.com/signstudio/signage-backend/internal/app/model"
	"github.com/signstudio/signage-backend/pkg/logger"
	"gorm.io/gorm"
)

// ConfigurationRepository persists the link rows binding a product to its
// configured options. Every link table carries a composite unique index on
// (product_id, option_id), so duplicate pairs are rejected by the database
// even when two requests race past the application-level existence check.
type ConfigurationRepository interface {
	// WithTx returns a repository bound to the given transaction handle.
	WithTx(tx *gorm.DB) ConfigurationRepository

	CreateImageLink(link *model.ProductImage) error
	CreateTextColorLink(link *model.ProductTextColor) error
	CreateBackgroundColorLink(link *model.ProductBackgroundColor) error
	CreateShapeLink(link *model.ProductShape) error

	ImageLinkExists(productID string, imageID uint) (bool, error)
	TextColorLinkExists(productID string, colorID uint) (bool, error)
	BackgroundColorLinkExists(productID string, colorID uint) (bool, error)
	ShapeLinkExists(productID string, shapeID uint) (bool, error)

	FindImageLinks(productID string) ([]model.ProductImage, error)
	FindTextColorLinks(productID string) ([]model.ProductTextColor, error)
	FindBackgroundColorLinks(productID string) ([]model.ProductBackgroundColor, error)
	FindShapeLinks(productID string) ([]model.ProductShape, error)

	DeleteImageLinks(productID string) error
	DeleteTextColorLinks(productID string) error
	DeleteBackgroundColorLinks(productID string) error
	DeleteShapeLinks(productID string) error
}

type configurationRepository struct {
	db *gorm.DB
}

func NewConfigurationRepository(db *gorm.DB) ConfigurationRepository {
	return &configurationRepository{db: db}
}

func (r *configurationRepository) WithTx(tx *gorm.DB) ConfigurationRepository {
	return &configurationRepository{db: tx}
}

func (r *configurationRepository) CreateImageLink(link *model.ProductImage) error {
	if err := r.db.Create(link).Error; err != nil {
		logger.Error("Failed to create image link", err, map[string]interface{}{
			"product_id": link.ProductID,
			"image_id":   link.ImageID,
		})
		return err
	}
	return nil
}

func (r *configurationRepository) CreateTextColorLink(link *model.ProductTextColor) error {
	if err := r.db.Create(link).Error; err != nil {
		logger.Error("Failed to create text color link", err, map[string]interface{}{
			"product_id": link.ProductID,
			"color_id":   link.ColorID,
		})
		return err
	}
	return nil
}

func (r *configurationRepository) CreateBackgroundColorLink(link *model.ProductBackgroundColor) error {
	if err := r.db.Create(link).Error; err != nil {
		logger.Error("Failed to create background color link", err, map[string]interface{}{
			"product_id": link.ProductID,
			"color_id":   link.ColorID,
		})
		return err
	}
	return nil
}

func (r *configurationRepository) CreateShapeLink(link *model.ProductShape) error {
	if err := r.db.Create(link).Error; err != nil {
		logger.Error("Failed to create shape link", err, map[string]interface{}{
			"product_id": link.ProductID,
			"shape_id":   link.ShapeID,
		})
		return err
	}
	return nil
}

func (r *configurationRepository) ImageLinkExists(productID string, imageID uint) (bool, error) {
	return r.exists(&model.ProductImage{}, "product_id = ? AND image_id = ?", productID, imageID)
}

func (r *configurationRepository) TextColorLinkExists(productID string, colorID uint) (bool, error) {
	return r.exists(&model.ProductTextColor{}, "product_id = ? AND color_id = ?", productID, colorID)
}

func (r *configurationRepository) BackgroundColorLinkExists(productID string, colorID uint) (bool, error) {
	return r.exists(&model.ProductBackgroundColor{}, "product_id = ? AND color_id = ?", productID, colorID)
}

func (r *configurationRepository) ShapeLinkExists(productID string, shapeID uint) (bool, error) {
	return r.exists(&model.ProductShape{}, "product_id = ? AND shape_id = ?", productID, shapeID)
}

func (r *configurationRepository) exists(m interface{}, query string, args ...interface{}) (bool, error) {
	err := r.db.Where(query, args...).First(m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *configurationRepository) FindImageLinks(productID string) ([]model.ProductImage, error) {
	var links []model.ProductImage
	err := r.db.Preload("Image").Where("product_id = ?", productID).Order("id ASC").Find(&links).Error
	if err != nil {
		logger.Error("Failed to find image links", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}
	return links, nil
}

func (r *configurationRepository) FindTextColorLinks(productID string) ([]model.ProductTextColor, error) {
	var links []model.ProductTextColor
	err := r.db.Preload("Color").Where("product_id = ?", productID).Order("id ASC").Find(&links).Error
	if err != nil {
		logger.Error("Failed to find text color links", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}
	return links, nil
}

func (r *configurationRepository) FindBackgroundColorLinks(productID string) ([]model.ProductBackgroundColor, error) {
	var links []model.ProductBackgroundColor
	err := r.db.Preload("Color").Where("product_id = ?", productID).Order("id ASC").Find(&links).Error
	if err != nil {
		logger.Error("Failed to find background color links", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}
	return links, nil
}

func (r *configurationRepository) FindShapeLinks(productID string) ([]model.ProductShape, error) {
	var links []model.ProductShape
	err := r.db.Preload("Shape").Where("product_id = ?", productID).Order("id ASC").Find(&links).Error
	if err != nil {
		logger.Error("Failed to find shape links", err, map[string]interface{}{
			"product_id": productID,
		})
		return nil, err
	}
	return links, nil
}

func (r *configurationRepository) DeleteImageLinks(productID string) error {
	return r.deleteLinks(&model.ProductImage{}, productID)
}

func (r *configurationRepository) DeleteTextColorLinks(productID string) error {
	return r.deleteLinks(&model.ProductTextColor{}, productID)
}

func (r *configurationRepository) DeleteBackgroundColorLinks(productID string) error {
	return r.deleteLinks(&model.ProductBackgroundColor{}, productID)
}

func (r *configurationRepository) DeleteShapeLinks(productID string) error {
	return r.deleteLinks(&model.ProductShape{}, productID)
}

func (r *configurationRepository) deleteLinks(m interface{}, productID string) error {
	result := r.db.Where("product_id = ?", productID).Delete(m)
	if result.Error != nil {
		logger.Error("Failed to delete links", result.Error, map[string]interface{}{
			"product_id": productID,
		})
		return result.Error
	}
	logger.Debug("Links deleted", map[string]interface{}{
		"product_id": productID,
		"count":      result.RowsAffected,
	})
	return nil
}
