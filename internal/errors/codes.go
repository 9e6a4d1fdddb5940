package errors

// Error code constants returned in API responses.
// Format: CATEGORY_SPECIFIC_DETAIL. The admin frontend maps these codes to
// user-facing messages.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT"
	ValidationRequired      = "VALIDATION_REQUIRED"

	// ==================== Catalog (CATALOG_) ====================
	CatalogColorNotFound = "CATALOG_COLOR_NOT_FOUND"
	CatalogColorExists   = "CATALOG_COLOR_EXISTS"
	CatalogImageNotFound = "CATALOG_IMAGE_NOT_FOUND"
	CatalogShapeNotFound = "CATALOG_SHAPE_NOT_FOUND"
	CatalogInvalidHex    = "CATALOG_INVALID_HEX"

	// ==================== Configuration (CONFIG_) ====================
	ConfigDuplicateLink  = "CONFIG_DUPLICATE_LINK"
	ConfigInvalidPrice   = "CONFIG_INVALID_PRICE"
	ConfigProductMissing = "CONFIG_PRODUCT_MISSING"

	// ==================== Render (RENDER_) ====================
	RenderAssetNotFound  = "RENDER_ASSET_NOT_FOUND"
	RenderShapeNoArtwork = "RENDER_SHAPE_NO_ARTWORK"
	RenderFetchFailed    = "RENDER_FETCH_FAILED"
	RenderComposeFailed  = "RENDER_COMPOSE_FAILED"
	RenderInvalidFormat  = "RENDER_INVALID_FORMAT"

	// ==================== Upload/Storage (UPLOAD_) ====================
	UploadFailed     = "UPLOAD_FAILED"
	UploadSignFailed = "UPLOAD_SIGN_FAILED"
	UploadMissingURL = "UPLOAD_MISSING_URL"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"
)
