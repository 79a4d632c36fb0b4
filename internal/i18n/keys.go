// Package i18n provides internationalization support for the sheet pricing service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyCannotProduce indicates the requested piece cannot be produced
	// on the selected sheet.
	ErrKeyCannotProduce = "error.cannot_produce"
	// ErrKeyInvalidConfiguration indicates invalid sheet or policy configuration.
	ErrKeyInvalidConfiguration = "error.invalid_configuration"
	// ErrKeyMaterialNotFound indicates the referenced material does not exist.
	ErrKeyMaterialNotFound = "error.material_not_found"
	// ErrKeyRuleSetNotFound indicates the referenced rule set does not exist.
	ErrKeyRuleSetNotFound = "error.rule_set_not_found"
	// ErrKeyServiceUnavailable indicates a dependency is unavailable.
	ErrKeyServiceUnavailable = "error.service_unavailable"
)

// Success message translation keys.
const (
	// SuccessKeyQuoteCalculated indicates a successfully priced quote.
	SuccessKeyQuoteCalculated = "success.quote_calculated"
)
