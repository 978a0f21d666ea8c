// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired     = "auth.required"
	KeyAuthInvalidToken = "auth.invalid_token"
	KeyAuthTokenExpired = "auth.token_expired"
	KeyAuthLoginSuccess = "auth.login_success"
	KeyAdminOnly        = "auth.admin_only"

	// Products
	KeyProductCreated   = "product.created"
	KeyProductUpdated   = "product.updated"
	KeyProductDeleted   = "product.deleted"
	KeyProductNotFound  = "product.not_found"
	KeyProductSlugTaken = "product.slug_taken"
	KeyProductBadSlug   = "product.invalid_slug"
	KeyProductBadBrand  = "product.invalid_brand"
	KeyProductBadFlag   = "product.invalid_flag"

	// Locations
	KeyLocationCreated  = "location.created"
	KeyLocationUpdated  = "location.updated"
	KeyLocationDeleted  = "location.deleted"
	KeyLocationNotFound = "location.not_found"

	// Registration
	KeyRegistrationReceived = "registration.received"
	KeyRegistrationConsent  = "registration.consent_required"
	KeyRegistrationFailed   = "registration.failed"

	// Uploads
	KeyFileUploadSuccess = "upload.success"
	KeyFileUploadFailed  = "upload.failed"

	// Clients feed
	KeyClientsFeedFailed = "clients.feed_failed"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"
)
