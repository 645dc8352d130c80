package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrIndexNotFound is returned when an index is not found
	ErrIndexNotFound = errors.New("index not found")

	// ErrIndexAlreadyExists is returned when trying to create an index that already exists
	ErrIndexAlreadyExists = errors.New("index already exists")

	// ErrMissingDocumentID is returned when a document lacks its configured id field
	ErrMissingDocumentID = errors.New("document id field missing")

	// ErrInvalidDocumentID is returned when the id field value is neither string nor number
	ErrInvalidDocumentID = errors.New("document id field invalid")

	// ErrDuplicateDocument is returned when adding a document whose id is already indexed
	ErrDuplicateDocument = errors.New("document already indexed")

	// ErrJobNotFound is returned when a job is not found
	ErrJobNotFound = errors.New("job not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// IndexNotFoundError represents an index not found error with context
type IndexNotFoundError struct {
	IndexName string
}

func (e *IndexNotFoundError) Error() string {
	return fmt.Sprintf("index named '%s' not found", e.IndexName)
}

func (e *IndexNotFoundError) Is(target error) bool {
	return target == ErrIndexNotFound
}

// NewIndexNotFoundError creates a new IndexNotFoundError
func NewIndexNotFoundError(indexName string) *IndexNotFoundError {
	return &IndexNotFoundError{IndexName: indexName}
}

// IndexAlreadyExistsError represents an index already exists error with context
type IndexAlreadyExistsError struct {
	IndexName string
}

func (e *IndexAlreadyExistsError) Error() string {
	return fmt.Sprintf("index named '%s' already exists", e.IndexName)
}

func (e *IndexAlreadyExistsError) Is(target error) bool {
	return target == ErrIndexAlreadyExists
}

// NewIndexAlreadyExistsError creates a new IndexAlreadyExistsError
func NewIndexAlreadyExistsError(indexName string) *IndexAlreadyExistsError {
	return &IndexAlreadyExistsError{IndexName: indexName}
}

// MissingDocumentIDError reports a document that lacks the configured id field
type MissingDocumentIDError struct {
	IDField string
}

func (e *MissingDocumentIDError) Error() string {
	return fmt.Sprintf("document is missing its id field '%s'", e.IDField)
}

func (e *MissingDocumentIDError) Is(target error) bool {
	return target == ErrMissingDocumentID
}

// NewMissingDocumentIDError creates a new MissingDocumentIDError
func NewMissingDocumentIDError(idField string) *MissingDocumentIDError {
	return &MissingDocumentIDError{IDField: idField}
}

// InvalidDocumentIDError reports an id field value that cannot be stringified
type InvalidDocumentIDError struct {
	IDField string
	Value   interface{}
}

func (e *InvalidDocumentIDError) Error() string {
	return fmt.Sprintf("document id field '%s' has value of type %T, expected string or number", e.IDField, e.Value)
}

func (e *InvalidDocumentIDError) Is(target error) bool {
	return target == ErrInvalidDocumentID
}

// NewInvalidDocumentIDError creates a new InvalidDocumentIDError
func NewInvalidDocumentIDError(idField string, value interface{}) *InvalidDocumentIDError {
	return &InvalidDocumentIDError{IDField: idField, Value: value}
}

// DuplicateDocumentError reports an attempt to re-add an already indexed id
type DuplicateDocumentError struct {
	DocumentID string
}

func (e *DuplicateDocumentError) Error() string {
	return fmt.Sprintf("document with id '%s' is already indexed", e.DocumentID)
}

func (e *DuplicateDocumentError) Is(target error) bool {
	return target == ErrDuplicateDocument
}

// NewDuplicateDocumentError creates a new DuplicateDocumentError
func NewDuplicateDocumentError(documentID string) *DuplicateDocumentError {
	return &DuplicateDocumentError{DocumentID: documentID}
}

// JobNotFoundError represents a job not found error with context
type JobNotFoundError struct {
	JobID string
}

func (e *JobNotFoundError) Error() string {
	return fmt.Sprintf("job with ID '%s' not found", e.JobID)
}

func (e *JobNotFoundError) Is(target error) bool {
	return target == ErrJobNotFound
}

// NewJobNotFoundError creates a new JobNotFoundError
func NewJobNotFoundError(jobID string) *JobNotFoundError {
	return &JobNotFoundError{JobID: jobID}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
