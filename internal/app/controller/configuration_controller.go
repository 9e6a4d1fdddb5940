package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/signstudio/signage-backend/internal/app/service"
	apperrors "github.com/signstudio/signage-backend/internal/errors"
	"github.com/signstudio/signage-backend/pkg/logger"
	"github.com/signstudio/signage-backend/pkg/util"
)

// IDList accepts either a single JSON number or an array of numbers. The
// admin frontend historically sent both shapes for color ids, so the API
// keeps accepting both. A nil IDList means the field was absent.
type IDList []uint

func (l *IDList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*l = nil
		return nil
	}
	if data[0] == '[' {
		ids := []uint{}
		if err := json.Unmarshal(data, &ids); err != nil {
			return err
		}
		*l = ids
		return nil
	}
	var id uint
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	*l = IDList{id}
	return nil
}

// PriceValue accepts a JSON number or a numeric string. Form-originated
// payloads send prices as strings.
type PriceValue float64

func (p *PriceValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*p = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*p = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", s)
		}
		*p = PriceValue(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = PriceValue(v)
	return nil
}

type optionEntry struct {
	ID              uint       `json:"id"`
	AdditionalPrice PriceValue `json:"additional_price"`
}

type configurationRequest struct {
	ProductID          string        `json:"product_id"`
	TextColorIDs       IDList        `json:"text_color_id"`
	BackgroundColorIDs IDList        `json:"background_color_id"`
	ConfiguredImages   []optionEntry `json:"configured_images"`
	ConfiguredShapes   []optionEntry `json:"configured_shapes"`
}

func (r *configurationRequest) toInput() service.ConfigurationInput {
	input := service.ConfigurationInput{
		TextColorIDs:       r.TextColorIDs,
		BackgroundColorIDs: r.BackgroundColorIDs,
	}
	if r.ConfiguredImages != nil {
		input.Images = make([]service.OptionSelection, 0, len(r.ConfiguredImages))
		for _, entry := range r.ConfiguredImages {
			input.Images = append(input.Images, service.OptionSelection{
				ID:              entry.ID,
				AdditionalPrice: float64(entry.AdditionalPrice),
			})
		}
	}
	if r.ConfiguredShapes != nil {
		input.Shapes = make([]service.OptionSelection, 0, len(r.ConfiguredShapes))
		for _, entry := range r.ConfiguredShapes {
			input.Shapes = append(input.Shapes, service.OptionSelection{
				ID:              entry.ID,
				AdditionalPrice: float64(entry.AdditionalPrice),
			})
		}
	}
	return input
}

type ConfigurationController struct {
	configService service.ConfigurationService
}

func NewConfigurationController(configService service.ConfigurationService) *ConfigurationController {
	return &ConfigurationController{configService: configService}
}

// Create handles POST /api/v1/configurations
func (ctrl *ConfigurationController) Create(c *gin.Context) {
	var req configurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body: "+err.Error())
		return
	}

	productID := util.NormalizeProductID(req.ProductID)
	if productID == "" {
		apperrors.RespondWithRequiredFields(c, []string{"product_id"})
		return
	}

	config, err := ctrl.configService.Create(productID, req.toInput())
	if err != nil {
		ctrl.respondError(c, err, "create configuration")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Configuration created",
		"data":    config,
	})
}

// Update handles PUT /api/v1/configurations
func (ctrl *ConfigurationController) Update(c *gin.Context) {
	var req configurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body: "+err.Error())
		return
	}

	productID := util.NormalizeProductID(req.ProductID)
	if productID == "" {
		apperrors.RespondWithRequiredFields(c, []string{"product_id"})
		return
	}

	config, err := ctrl.configService.Replace(productID, req.toInput())
	if err != nil {
		ctrl.respondError(c, err, "update configuration")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Configuration updated",
		"data":    config,
	})
}

// List handles GET /api/v1/configurations?product_id=
func (ctrl *ConfigurationController) List(c *gin.Context) {
	productID := util.NormalizeProductID(c.Query("product_id"))
	if productID == "" {
		apperrors.RespondWithRequiredFields(c, []string{"product_id"})
		return
	}

	config, err := ctrl.configService.List(productID)
	if err != nil {
		ctrl.respondError(c, err, "list configuration")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": config,
	})
}

func (ctrl *ConfigurationController) respondError(c *gin.Context, err error, context string) {
	switch e := err.(type) {
	case *service.NotFoundError:
		apperrors.NotFound(c, catalogNotFoundCode(e.Kind), e.Error())
		return
	case *service.DuplicateLinkError:
		apperrors.Forbidden(c, apperrors.ConfigDuplicateLink, e.Error())
		return
	}

	switch err {
	case service.ErrProductIDRequired:
		apperrors.BadRequest(c, apperrors.ConfigProductMissing, err.Error())
	case service.ErrNegativePrice:
		apperrors.BadRequest(c, apperrors.ConfigInvalidPrice, err.Error())
	default:
		logger.Error("Configuration request failed", err, map[string]interface{}{
			"context": context,
		})
		info := apperrors.ParseError(err, context)
		if info.Code == apperrors.ConfigDuplicateLink {
			apperrors.Forbidden(c, info.Code, info.Message)
			return
		}
		apperrors.InternalError(c, info.Message)
	}
}

func catalogNotFoundCode(kind service.OptionKind) string {
	switch kind {
	case service.OptionImage:
		return apperrors.CatalogImageNotFound
	case service.OptionShape:
		return apperrors.CatalogShapeNotFound
	default:
		return apperrors.CatalogColorNotFound
	}
}
