package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signstudio/signage-backend/internal/app/model"
	"github.com/signstudio/signage-backend/internal/app/repository"
	"github.com/signstudio/signage-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrInvalidHex       = errors.New("hex value must match #RRGGBB")
	ErrColorNameMissing = errors.New("color name is required")
	ErrImageURLMissing  = errors.New("image url is required")
	ErrShapeNameMissing = errors.New("shape name is required")
)

// ColorExistsError reports an attempt to register a hex value that is
// already in the catalog.
type ColorExistsError struct {
	HexValue string
}

func (e *ColorExistsError) Error() string {
	return fmt.Sprintf("color %s already exists", e.HexValue)
}

type CatalogService interface {
	AddColor(name, hexValue string) (*model.AvailableColor, error)
	ListColors() ([]model.AvailableColor, error)

	AddImage(imageURL string, imageName *string) (*model.SignageImage, error)
	ListImages() ([]model.SignageImage, error)
	DeleteImage(id uint) error

	AddShape(name string, image *string, width, height *float64) (*model.ShapeSize, error)
	ListShapes() ([]model.ShapeSize, error)
	DeleteShape(id uint) error
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) AddColor(name, hexValue string) (*model.AvailableColor, error) {
	name = strings.TrimSpace(name)
	hexValue = strings.TrimSpace(hexValue)
	if name == "" {
		return nil, ErrColorNameMissing
	}

	if !model.ValidHex(hexValue) {
		return nil, ErrInvalidHex
	}
	color := &model.AvailableColor{ColorName: name, HexValue: hexValue}

	if _, err := s.catalogRepo.FindColorByHex(hexValue); err == nil {
		return nil, &ColorExistsError{HexValue: hexValue}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.catalogRepo.CreateColor(color); err != nil {
		return nil, err
	}

	logger.Info("Catalog color added", map[string]interface{}{
		"color_id":  color.ID,
		"hex_value": color.HexValue,
	})
	return color, nil
}

func (s *catalogService) ListColors() ([]model.AvailableColor, error) {
	return s.catalogRepo.FindAllColors()
}

func (s *catalogService) AddImage(imageURL string, imageName *string) (*model.SignageImage, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil, ErrImageURLMissing
	}

	image := &model.SignageImage{ImageURL: imageURL, ImageName: imageName}
	if err := s.catalogRepo.CreateImage(image); err != nil {
		return nil, err
	}

	logger.Info("Catalog image added", map[string]interface{}{
		"image_id":  image.ID,
		"image_url": image.ImageURL,
	})
	return image, nil
}

func (s *catalogService) ListImages() ([]model.SignageImage, error) {
	return s.catalogRepo.FindAllImages()
}

func (s *catalogService) DeleteImage(id uint) error {
	if err := s.catalogRepo.DeleteImage(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Kind: OptionImage, ID: id}
		}
		return err
	}

	logger.Info("Catalog image deleted", map[string]interface{}{
		"image_id": id,
	})
	return nil
}

func (s *catalogService) AddShape(name string, image *string, width, height *float64) (*model.ShapeSize, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrShapeNameMissing
	}

	shape := &model.ShapeSize{ShapeName: name, Image: image, Width: width, Height: height}
	if err := s.catalogRepo.CreateShape(shape); err != nil {
		return nil, err
	}

	logger.Info("Catalog shape added", map[string]interface{}{
		"shape_id":   shape.ID,
		"shape_name": shape.ShapeName,
	})
	return shape, nil
}

func (s *catalogService) ListShapes() ([]model.ShapeSize, error) {
	return s.catalogRepo.FindAllShapes()
}

func (s *catalogService) DeleteShape(id uint) error {
	if err := s.catalogRepo.DeleteShape(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Kind: OptionShape, ID: id}
		}
		return err
	}

	logger.Info("Catalog shape deleted", map[string]interface{}{
		"shape_id": id,
	})
	return nil
}
