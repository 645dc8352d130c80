package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorCode identifies a category of API error in responses.
type ErrorCode string

const (
	ErrCodeInvalidJSON      ErrorCode = "INVALID_JSON"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeIndexNotFound    ErrorCode = "INDEX_NOT_FOUND"
	ErrCodeIndexExists      ErrorCode = "INDEX_EXISTS"
	ErrCodeJobNotFound      ErrorCode = "JOB_NOT_FOUND"
	ErrCodeDuplicateDoc     ErrorCode = "DUPLICATE_DOCUMENT"
	ErrCodeIndexingFailed   ErrorCode = "INDEXING_FAILED"
	ErrCodeSearchFailed     ErrorCode = "SEARCH_FAILED"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// APIError is the JSON error body returned by all handlers.
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// SendError writes a structured error response.
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string) {
	c.JSON(statusCode, gin.H{"error": APIError{Code: code, Message: message}})
}

// SendIndexNotFoundError writes a 404 for a missing index.
func SendIndexNotFoundError(c *gin.Context, indexName string) {
	SendError(c, http.StatusNotFound, ErrCodeIndexNotFound, "index named '"+indexName+"' not found")
}

// SendIndexExistsError writes a 409 for a duplicate index name.
func SendIndexExistsError(c *gin.Context, indexName string) {
	SendError(c, http.StatusConflict, ErrCodeIndexExists, "index named '"+indexName+"' already exists")
}

// SendJobNotFoundError writes a 404 for a missing job.
func SendJobNotFoundError(c *gin.Context, jobID string) {
	SendError(c, http.StatusNotFound, ErrCodeJobNotFound, "job with ID '"+jobID+"' not found")
}

// SendInvalidJSONError writes a 400 for an unparseable request body.
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrCodeInvalidJSON, "Invalid request body: "+err.Error())
}

// SendInternalError writes a 500 with the failing operation for context.
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrCodeInternal, "Failed to "+operation+": "+err.Error())
}
