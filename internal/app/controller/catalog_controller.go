package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/signstudio/signage-backend/internal/app/service"
	apperrors "github.com/signstudio/signage-backend/internal/errors"
	"github.com/signstudio/signage-backend/pkg/logger"
)

type addColorRequest struct {
	ColorName string `json:"color_name"`
	HexValue  string `json:"hex_value"`
}

type addImageRequest struct {
	ImageURL  string  `json:"image_url"`
	ImageName *string `json:"image_name"`
}

type addShapeRequest struct {
	ShapeName string   `json:"shape_name"`
	Image     *string  `json:"image"`
	Width     *float64 `json:"width"`
	Height    *float64 `json:"height"`
}

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// AddColor handles POST /api/v1/colors
func (ctrl *CatalogController) AddColor(c *gin.Context) {
	var req addColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body: "+err.Error())
		return
	}
	if req.ColorName == "" || req.HexValue == "" {
		apperrors.RespondWithRequiredFields(c, []string{"color_name", "hex_value"})
		return
	}

	color, err := ctrl.catalogService.AddColor(req.ColorName, req.HexValue)
	if err != nil {
		ctrl.respondError(c, err, "create color")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Color added",
		"data":    color,
	})
}

// ListColors handles GET /api/v1/colors
func (ctrl *CatalogController) ListColors(c *gin.Context) {
	colors, err := ctrl.catalogService.ListColors()
	if err != nil {
		ctrl.respondError(c, err, "list colors")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": colors,
	})
}

// AddImage handles POST /api/v1/images
func (ctrl *CatalogController) AddImage(c *gin.Context) {
	var req addImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body: "+err.Error())
		return
	}
	if req.ImageURL == "" {
		apperrors.RespondWithRequiredFields(c, []string{"image_url"})
		return
	}

	image, err := ctrl.catalogService.AddImage(req.ImageURL, req.ImageName)
	if err != nil {
		ctrl.respondError(c, err, "create image")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Image added",
		"data":    image,
	})
}

// ListImages handles GET /api/v1/images
func (ctrl *CatalogController) ListImages(c *gin.Context) {
	images, err := ctrl.catalogService.ListImages()
	if err != nil {
		ctrl.respondError(c, err, "list images")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": images,
	})
}

// DeleteImage handles DELETE /api/v1/images/:id
func (ctrl *CatalogController) DeleteImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteImage(id); err != nil {
		ctrl.respondError(c, err, "delete image")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Image deleted",
	})
}

// AddShape handles POST /api/v1/shapes
func (ctrl *CatalogController) AddShape(c *gin.Context) {
	var req addShapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body: "+err.Error())
		return
	}
	if req.ShapeName == "" {
		apperrors.RespondWithRequiredFields(c, []string{"shape_name"})
		return
	}

	shape, err := ctrl.catalogService.AddShape(req.ShapeName, req.Image, req.Width, req.Height)
	if err != nil {
		ctrl.respondError(c, err, "create shape")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Shape added",
		"data":    shape,
	})
}

// ListShapes handles GET /api/v1/shapes
func (ctrl *CatalogController) ListShapes(c *gin.Context) {
	shapes, err := ctrl.catalogService.ListShapes()
	if err != nil {
		ctrl.respondError(c, err, "list shapes")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": shapes,
	})
}

// DeleteShape handles DELETE /api/v1/shapes/:id
func (ctrl *CatalogController) DeleteShape(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := ctrl.catalogService.DeleteShape(id); err != nil {
		ctrl.respondError(c, err, "delete shape")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Shape deleted",
	})
}

func (ctrl *CatalogController) respondError(c *gin.Context, err error, context string) {
	switch e := err.(type) {
	case *service.ColorExistsError:
		apperrors.Forbidden(c, apperrors.CatalogColorExists, e.Error())
		return
	case *service.NotFoundError:
		apperrors.NotFound(c, catalogNotFoundCode(e.Kind), e.Error())
		return
	}

	switch err {
	case service.ErrInvalidHex:
		apperrors.BadRequest(c, apperrors.CatalogInvalidHex, err.Error())
	case service.ErrColorNameMissing, service.ErrImageURLMissing, service.ErrShapeNameMissing:
		apperrors.BadRequest(c, apperrors.ValidationRequired, err.Error())
	default:
		logger.Error("Catalog request failed", err, map[string]interface{}{
			"context": context,
		})
		info := apperrors.ParseError(err, context)
		if info.Code == apperrors.CatalogColorExists {
			apperrors.Forbidden(c, info.Code, info.Message)
			return
		}
		apperrors.InternalError(c, info.Message)
	}
}

func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid id: "+raw)
		return 0, false
	}
	return uint(id), true
}
