package service

import (
	"errors"
	"fmt"

	"github.com/signstudio/signage-backend/internal/app/model"
	"github.com/signstudio/signage-backend/internal/app/repository"
	"github.com/signstudio/signage-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProductIDRequired = errors.New("product id is required")
	ErrNegativePrice     = errors.New("additional price must not be negative")
)

// OptionKind names one of the four configurable option types.
type OptionKind string

const (
	OptionImage           OptionKind = "image"
	OptionTextColor       OptionKind = "text color"
	OptionBackgroundColor OptionKind = "background color"
	OptionShape           OptionKind = "shape"
)

// NotFoundError reports a configuration or render request referencing a
// catalog entry that does not exist.
type NotFoundError struct {
	Kind OptionKind
	ID   uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// DuplicateLinkError reports an attempt to link an option that is already
// configured for the product.
type DuplicateLinkError struct {
	Kind      OptionKind
	ProductID string
	ID        uint
}

func (e *DuplicateLinkError) Error() string {
	return fmt.Sprintf("product %s already has %s %d configured", e.ProductID, e.Kind, e.ID)
}

// OptionSelection is one chosen option with its per-link price delta.
type OptionSelection struct {
	ID              uint
	AdditionalPrice float64
}

// ConfigurationInput carries the selections for each option type. A nil
// slice means the type is absent from the request; an empty non-nil slice
// means "present but empty", which Replace treats as "clear this type".
type ConfigurationInput struct {
	Images             []OptionSelection
	TextColorIDs       []uint
	BackgroundColorIDs []uint
	Shapes             []OptionSelection
}

// ProductConfiguration is the full option set for one product, with catalog
// rows joined in so callers can render without a second fetch.
type ProductConfiguration struct {
	ProductID        string                         `json:"product_id"`
	Images           []model.ProductImage           `json:"images"`
	Colors           []model.ProductTextColor       `json:"colors"`
	BackgroundColors []model.ProductBackgroundColor `json:"backgroundColors"`
	ShapesSizes      []model.ProductShape           `json:"shapesSizes"`
}

type ConfigurationService interface {
	// Create adds links for every supplied option. Validation is fail-fast
	// per type: a missing catalog reference or an existing duplicate link
	// aborts the call, and the transaction leaves no partial writes.
	Create(productID string, input ConfigurationInput) (*ProductConfiguration, error)

	// Replace performs a type-scoped full reset: each option type present in
	// the input (even empty) has its links deleted and reinserted; absent
	// types are left untouched. Selections referencing missing catalog rows
	// are logged and skipped rather than aborting the batch.
	Replace(productID string, input ConfigurationInput) (*ProductConfiguration, error)

	// List returns all four link types for a product, with catalog rows
	// preloaded. A product with no configuration yields empty collections.
	List(productID string) (*ProductConfiguration, error)
}

type configurationService struct {
	catalogRepo repository.CatalogRepository
	configRepo  repository.ConfigurationRepository
	db          *gorm.DB
}

func NewConfigurationService(
	catalogRepo repository.CatalogRepository,
	configRepo repository.ConfigurationRepository,
	db *gorm.DB,
) ConfigurationService {
	return &configurationService{
		catalogRepo: catalogRepo,
		configRepo:  configRepo,
		db:          db,
	}
}

func (s *configurationService) Create(productID string, input ConfigurationInput) (*ProductConfiguration, error) {
	if productID == "" {
		return nil, ErrProductIDRequired
	}
	if err := validatePrices(input); err != nil {
		return nil, err
	}

	logger.Debug("Creating product configuration", map[string]interface{}{
		"product_id":        productID,
		"images":            len(input.Images),
		"text_colors":       len(input.TextColorIDs),
		"background_colors": len(input.BackgroundColorIDs),
		"shapes":            len(input.Shapes),
	})

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.configRepo.WithTx(tx)
		catalog := s.catalogRepo.WithTx(tx)

		for _, sel := range input.Images {
			if _, err := catalog.FindImageByID(sel.ID); err != nil {
				return catalogLookupError(err, OptionImage, sel.ID)
			}
			exists, err := repo.ImageLinkExists(productID, sel.ID)
			if err != nil {
				return err
			}
			if exists {
				return &DuplicateLinkError{Kind: OptionImage, ProductID: productID, ID: sel.ID}
			}
			if err := repo.CreateImageLink(&model.ProductImage{
				ProductID:       productID,
				ImageID:         sel.ID,
				AdditionalPrice: sel.AdditionalPrice,
			}); err != nil {
				return err
			}
		}

		for _, id := range input.TextColorIDs {
			if _, err := catalog.FindColorByID(id); err != nil {
				return catalogLookupError(err, OptionTextColor, id)
			}
			exists, err := repo.TextColorLinkExists(productID, id)
			if err != nil {
				return err
			}
			if exists {
				return &DuplicateLinkError{Kind: OptionTextColor, ProductID: productID, ID: id}
			}
			if err := repo.CreateTextColorLink(&model.ProductTextColor{
				ProductID: productID,
				ColorID:   id,
			}); err != nil {
				return err
			}
		}

		for _, id := range input.BackgroundColorIDs {
			if _, err := catalog.FindColorByID(id); err != nil {
				return catalogLookupError(err, OptionBackgroundColor, id)
			}
			exists, err := repo.BackgroundColorLinkExists(productID, id)
			if err != nil {
				return err
			}
			if exists {
				return &DuplicateLinkError{Kind: OptionBackgroundColor, ProductID: productID, ID: id}
			}
			if err := repo.CreateBackgroundColorLink(&model.ProductBackgroundColor{
				ProductID: productID,
				ColorID:   id,
			}); err != nil {
				return err
			}
		}

		for _, sel := range input.Shapes {
			if _, err := catalog.FindShapeByID(sel.ID); err != nil {
				return catalogLookupError(err, OptionShape, sel.ID)
			}
			exists, err := repo.ShapeLinkExists(productID, sel.ID)
			if err != nil {
				return err
			}
			if exists {
				return &DuplicateLinkError{Kind: OptionShape, ProductID: productID, ID: sel.ID}
			}
			if err := repo.CreateShapeLink(&model.ProductShape{
				ProductID:       productID,
				ShapeID:         sel.ID,
				AdditionalPrice: sel.AdditionalPrice,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Product configuration created", map[string]interface{}{
		"product_id": productID,
	})
	return s.List(productID)
}

func (s *configurationService) Replace(productID string, input ConfigurationInput) (*ProductConfiguration, error) {
	if productID == "" {
		return nil, ErrProductIDRequired
	}
	if err := validatePrices(input); err != nil {
		return nil, err
	}

	logger.Debug("Replacing product configuration", map[string]interface{}{
		"product_id":                productID,
		"images_present":            input.Images != nil,
		"text_colors_present":       input.TextColorIDs != nil,
		"background_colors_present": input.BackgroundColorIDs != nil,
		"shapes_present":            input.Shapes != nil,
	})

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := s.configRepo.WithTx(tx)
		catalog := s.catalogRepo.WithTx(tx)

		if input.Images != nil {
			if err := repo.DeleteImageLinks(productID); err != nil {
				return err
			}
			seen := make(map[uint]bool, len(input.Images))
			for _, sel := range input.Images {
				if seen[sel.ID] {
					return &DuplicateLinkError{Kind: OptionImage, ProductID: productID, ID: sel.ID}
				}
				seen[sel.ID] = true
				if _, err := catalog.FindImageByID(sel.ID); err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						logger.Warn("Skipping unknown image during replace", map[string]interface{}{
							"product_id": productID,
							"image_id":   sel.ID,
						})
						continue
					}
					return err
				}
				if err := repo.CreateImageLink(&model.ProductImage{
					ProductID:       productID,
					ImageID:         sel.ID,
					AdditionalPrice: sel.AdditionalPrice,
				}); err != nil {
					return err
				}
			}
		}

		if input.TextColorIDs != nil {
			if err := repo.DeleteTextColorLinks(productID); err != nil {
				return err
			}
			seen := make(map[uint]bool, len(input.TextColorIDs))
			for _, id := range input.TextColorIDs {
				if seen[id] {
					return &DuplicateLinkError{Kind: OptionTextColor, ProductID: productID, ID: id}
				}
				seen[id] = true
				if _, err := catalog.FindColorByID(id); err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						logger.Warn("Skipping unknown text color during replace", map[string]interface{}{
							"product_id": productID,
							"color_id":   id,
						})
						continue
					}
					return err
				}
				if err := repo.CreateTextColorLink(&model.ProductTextColor{
					ProductID: productID,
					ColorID:   id,
				}); err != nil {
					return err
				}
			}
		}

		if input.BackgroundColorIDs != nil {
			if err := repo.DeleteBackgroundColorLinks(productID); err != nil {
				return err
			}
			seen := make(map[uint]bool, len(input.BackgroundColorIDs))
			for _, id := range input.BackgroundColorIDs {
				if seen[id] {
					return &DuplicateLinkError{Kind: OptionBackgroundColor, ProductID: productID, ID: id}
				}
				seen[id] = true
				if _, err := catalog.FindColorByID(id); err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						logger.Warn("Skipping unknown background color during replace", map[string]interface{}{
							"product_id": productID,
							"color_id":   id,
						})
						continue
					}
					return err
				}
				if err := repo.CreateBackgroundColorLink(&model.ProductBackgroundColor{
					ProductID: productID,
					ColorID:   id,
				}); err != nil {
					return err
				}
			}
		}

		if input.Shapes != nil {
			if err := repo.DeleteShapeLinks(productID); err != nil {
				return err
			}
			seen := make(map[uint]bool, len(input.Shapes))
			for _, sel := range input.Shapes {
				if seen[sel.ID] {
					return &DuplicateLinkError{Kind: OptionShape, ProductID: productID, ID: sel.ID}
				}
				seen[sel.ID] = true
				if _, err := catalog.FindShapeByID(sel.ID); err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						logger.Warn("Skipping unknown shape during replace", map[string]interface{}{
							"product_id": productID,
							"shape_id":   sel.ID,
						})
						continue
					}
					return err
				}
				if err := repo.CreateShapeLink(&model.ProductShape{
					ProductID:       productID,
					ShapeID:         sel.ID,
					AdditionalPrice: sel.AdditionalPrice,
				}); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Product configuration replaced", map[string]interface{}{
		"product_id": productID,
	})
	return s.List(productID)
}

func (s *configurationService) List(productID string) (*ProductConfiguration, error) {
	if productID == "" {
		return nil, ErrProductIDRequired
	}

	images, err := s.configRepo.FindImageLinks(productID)
	if err != nil {
		return nil, err
	}
	colors, err := s.configRepo.FindTextColorLinks(productID)
	if err != nil {
		return nil, err
	}
	backgroundColors, err := s.configRepo.FindBackgroundColorLinks(productID)
	if err != nil {
		return nil, err
	}
	shapes, err := s.configRepo.FindShapeLinks(productID)
	if err != nil {
		return nil, err
	}

	return &ProductConfiguration{
		ProductID:        productID,
		Images:           images,
		Colors:           colors,
		BackgroundColors: backgroundColors,
		ShapesSizes:      shapes,
	}, nil
}

func validatePrices(input ConfigurationInput) error {
	for _, sel := range input.Images {
		if sel.AdditionalPrice < 0 {
			return ErrNegativePrice
		}
	}
	for _, sel := range input.Shapes {
		if sel.AdditionalPrice < 0 {
			return ErrNegativePrice
		}
	}
	return nil
}

func catalogLookupError(err error, kind OptionKind, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Kind: kind, ID: id}
	}
	return err
}
