package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/signstudio/signage-backend/internal/errors"
	"github.com/signstudio/signage-backend/internal/storage"
	"github.com/signstudio/signage-backend/pkg/logger"
)

// allowedArtworkTypes is the content-type allow list for catalog artwork.
var allowedArtworkTypes = []string{
	"image/svg+xml",
	"image/png",
	"image/jpeg",
	"image/webp",
}

type presignUploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Folder      string `json:"folder"`
}

type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(s3Storage *storage.S3Storage) *UploadController {
	return &UploadController{storage: s3Storage}
}

// PresignUpload handles POST /api/v1/upload/presign. It hands the admin a
// time-limited PUT URL so artwork bytes go straight to the bucket instead of
// through this service.
func (ctrl *UploadController) PresignUpload(c *gin.Context) {
	var req presignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body: "+err.Error())
		return
	}
	if req.Filename == "" || req.ContentType == "" {
		apperrors.RespondWithRequiredFields(c, []string{"filename", "content_type"})
		return
	}
	if err := ctrl.storage.ValidateContentType(req.ContentType, allowedArtworkTypes); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, err.Error())
		return
	}

	folder := req.Folder
	if folder == "" {
		folder = "artwork"
	}

	presigned, err := ctrl.storage.GeneratePresignedUpload(c.Request.Context(), req.Filename, req.ContentType, folder)
	if err != nil {
		logger.Error("Presigning upload URL failed", err, map[string]interface{}{
			"filename": req.Filename,
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.UploadFailed,
			"Failed to generate the upload URL")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": presigned,
	})
}
