package repository

import (
	"github.com/signstudio/signage-backend/internal/app/model"
	"github.com/signstudio/signage-backend/pkg/logger"
	"gorm.io/gorm"
)

// CatalogRepository persists the reusable option catalogs: colors, overlay
// images, and sign shapes.
type CatalogRepository interface {
	// WithTx returns a repository bound to the given transaction.
	WithTx(tx *gorm.DB) CatalogRepository

	CreateColor(color *model.AvailableColor) error
	FindColorByID(id uint) (*model.AvailableColor, error)
	FindColorByHex(hex string) (*model.AvailableColor, error)
	FindAllColors() ([]model.AvailableColor, error)

	CreateImage(image *model.SignageImage) error
	FindImageByID(id uint) (*model.SignageImage, error)
	FindAllImages() ([]model.SignageImage, error)
	DeleteImage(id uint) error

	CreateShape(shape *model.ShapeSize) error
	FindShapeByID(id uint) (*model.ShapeSize, error)
	FindAllShapes() ([]model.ShapeSize, error)
	DeleteShape(id uint) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) WithTx(tx *gorm.DB) CatalogRepository {
	return &catalogRepository{db: tx}
}

func (r *catalogRepository) CreateColor(color *model.AvailableColor) error {
	if err := r.db.Create(color).Error; err != nil {
		logger.Error("Failed to create color", err, map[string]interface{}{
			"color_name": color.ColorName,
			"hex_value":  color.HexValue,
		})
		return err
	}
	logger.Debug("Color created", map[string]interface{}{
		"color_id": color.ID,
	})
	return nil
}

func (r *catalogRepository) FindColorByID(id uint) (*model.AvailableColor, error) {
	var color model.AvailableColor
	if err := r.db.First(&color, id).Error; err != nil {
		return nil, err
	}
	return &color, nil
}

func (r *catalogRepository) FindColorByHex(hex string) (*model.AvailableColor, error) {
	var color model.AvailableColor
	if err := r.db.Where("hex_value = ?", hex).First(&color).Error; err != nil {
		return nil, err
	}
	return &color, nil
}

func (r *catalogRepository) FindAllColors() ([]model.AvailableColor, error) {
	var colors []model.AvailableColor
	if err := r.db.Order("id ASC").Find(&colors).Error; err != nil {
		logger.Error("Failed to list colors", err)
		return nil, err
	}
	return colors, nil
}

func (r *catalogRepository) CreateImage(image *model.SignageImage) error {
	if err := r.db.Create(image).Error; err != nil {
		logger.Error("Failed to create signage image", err, map[string]interface{}{
			"image_url": image.ImageURL,
		})
		return err
	}
	logger.Debug("Signage image created", map[string]interface{}{
		"image_id": image.ID,
	})
	return nil
}

func (r *catalogRepository) FindImageByID(id uint) (*model.SignageImage, error) {
	var image model.SignageImage
	if err := r.db.First(&image, id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *catalogRepository) FindAllImages() ([]model.SignageImage, error) {
	var images []model.SignageImage
	if err := r.db.Order("id ASC").Find(&images).Error; err != nil {
		logger.Error("Failed to list signage images", err)
		return nil, err
	}
	return images, nil
}

func (r *catalogRepository) DeleteImage(id uint) error {
	result := r.db.Delete(&model.SignageImage{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete signage image", result.Error, map[string]interface{}{
			"image_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *catalogRepository) CreateShape(shape *model.ShapeSize) error {
	if err := r.db.Create(shape).Error; err != nil {
		logger.Error("Failed to create shape", err, map[string]interface{}{
			"shape_name": shape.ShapeName,
		})
		return err
	}
	logger.Debug("Shape created", map[string]interface{}{
		"shape_id": shape.ID,
	})
	return nil
}

func (r *catalogRepository) FindShapeByID(id uint) (*model.ShapeSize, error) {
	var shape model.ShapeSize
	if err := r.db.First(&shape, id).Error; err != nil {
		return nil, err
	}
	return &shape, nil
}

func (r *catalogRepository) FindAllShapes() ([]model.ShapeSize, error) {
	var shapes []model.ShapeSize
	if err := r.db.Order("id ASC").Find(&shapes).Error; err != nil {
		logger.Error("Failed to list shapes", err)
		return nil, err
	}
	return shapes, nil
}

func (r *catalogRepository) DeleteShape(id uint) error {
	result := r.db.Delete(&model.ShapeSize{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete shape", result.Error, map[string]interface{}{
			"shape_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
