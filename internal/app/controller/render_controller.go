package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/signstudio/signage-backend/internal/app/service"
	apperrors "github.com/signstudio/signage-backend/internal/errors"
	"github.com/signstudio/signage-backend/internal/render"
	"github.com/signstudio/signage-backend/pkg/logger"
)

type renderRequest struct {
	ShapeID           uint   `json:"shape_id"`
	ImageID           uint   `json:"image_id"`
	ColorID           uint   `json:"color_id"`
	BackgroundColorID uint   `json:"bg_color_id"`
	Text              string `json:"text"`
	Format            string `json:"format"`
	Store             bool   `json:"store"`
}

type RenderController struct {
	renderService service.RenderService
}

func NewRenderController(renderService service.RenderService) *RenderController {
	return &RenderController{renderService: renderService}
}

// Render handles POST /api/v1/render. By default the composed image is
// returned as raw bytes; with store:true it is uploaded to object storage
// and addressed by URL instead.
func (ctrl *RenderController) Render(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body: "+err.Error())
		return
	}

	missing := missingRenderFields(req)
	if len(missing) > 0 {
		apperrors.RespondWithRequiredFields(c, missing)
		return
	}

	format, err := render.ParseFormat(req.Format)
	if err != nil {
		apperrors.BadRequest(c, apperrors.RenderInvalidFormat, err.Error())
		return
	}

	svcReq := service.RenderRequest{
		ShapeID:           req.ShapeID,
		ImageID:           req.ImageID,
		TextColorID:       req.ColorID,
		BackgroundColorID: req.BackgroundColorID,
		Text:              req.Text,
		Format:            format,
	}

	if req.Store {
		stored, err := ctrl.renderService.RenderAndStore(c.Request.Context(), svcReq)
		if err != nil {
			ctrl.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"url":      stored.URL,
			"filename": stored.Filename,
			"format":   stored.Format,
		})
		return
	}

	result, err := ctrl.renderService.Render(c.Request.Context(), svcReq)
	if err != nil {
		ctrl.respondError(c, err)
		return
	}
	c.Data(http.StatusOK, result.ContentType, result.Data)
}

// Sign handles GET /api/v1/render/sign?url=. It exchanges a stored object
// URL for a short-lived presigned download link.
func (ctrl *RenderController) Sign(c *gin.Context) {
	objectURL := c.Query("url")
	if objectURL == "" {
		apperrors.BadRequest(c, apperrors.UploadMissingURL, "url query parameter is required")
		return
	}

	signed, err := ctrl.renderService.SignDownloadURL(c.Request.Context(), objectURL)
	if err != nil {
		logger.Error("Presigning download URL failed", err, map[string]interface{}{
			"url": objectURL,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadSignFailed,
			"Failed to sign the download URL")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url": signed,
	})
}

func (ctrl *RenderController) respondError(c *gin.Context, err error) {
	switch e := err.(type) {
	case *service.NotFoundError:
		apperrors.NotFound(c, apperrors.RenderAssetNotFound, e.Error())
		return
	case *service.ShapeArtworkError:
		apperrors.NotFound(c, apperrors.RenderShapeNoArtwork, e.Error())
		return
	case *service.AssetFetchError:
		logger.Error("Render asset fetch failed", err, map[string]interface{}{
			"asset": e.Asset,
			"url":   e.URL,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.RenderFetchFailed, e.Error())
		return
	}

	logger.Error("Render failed", err)
	apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.RenderComposeFailed, err.Error())
}

func missingRenderFields(req renderRequest) []string {
	var missing []string
	if req.ShapeID == 0 {
		missing = append(missing, "shape_id")
	}
	if req.ImageID == 0 {
		missing = append(missing, "image_id")
	}
	if req.ColorID == 0 {
		missing = append(missing, "color_id")
	}
	if req.BackgroundColorID == 0 {
		missing = append(missing, "bg_color_id")
	}
	return missing
}
