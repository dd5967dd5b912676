package api

import (
	"encoding/json"                       // Decoder error types
	"errors"                              // Error inspection
	"fmt"                                 // Message formatting
	"freelance_board/internal/db"         // Storage error kinds
	"freelance_board/internal/domain"     // User types
	"freelance_board/internal/middleware" // Request id key
	"io"                                  // Empty body detection
	"net/http"                            // HTTP status codes
	"reflect"                             // Struct tag lookup
	"strings"                             // Tag parsing

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/gin-gonic/gin/binding"       // Gin's validator engine
	"github.com/go-playground/validator/v10" // Field level validation errors
	"github.com/sirupsen/logrus"             // Logging library
)

// Machine readable error codes
const (
	CodeValidation          = "validation_error"
	CodeUniqueViolation     = "unique_violation"
	CodeForeignKeyViolation = "foreign_key_violation"
	CodeNotFound            = "not_found"
	CodeStorageUnavailable  = "storage_unavailable"
	CodeInternal            = "internal_error"
)

// FieldError names one offending field of a rejected payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error   string       `json:"error"`
	Code    string       `json:"code"`
	Details []FieldError `json:"details,omitempty"`
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := registerValidations(v); err != nil {
			logrus.Fatalf("Failed to register validations: %v", err)
		}
	}
}

// registerValidations reports JSON names ("full_name") instead of Go field names ("FullName")
// and adds the user_type tag
func registerValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v.RegisterValidation("user_type", func(fl validator.FieldLevel) bool {
		return domain.UserType(fl.Field().String()).Valid()
	})
}

// bindJSON decodes the body into req, writing a 422 and returning false on failure
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Code:    CodeValidation,
			Details: fieldErrors(err),
		})
		return false
	}
	return true
}

// fieldErrors enumerates the fields behind a binding error
func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		return out
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return []FieldError{{Field: field, Message: "must be of type " + typeErr.Type.String()}}
	}
	if errors.Is(err, io.EOF) {
		return []FieldError{{Field: "body", Message: "is required"}}
	}
	return []FieldError{{Field: "body", Message: "must be a valid JSON object"}}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "user_type":
		return fmt.Sprintf("must be one of: %s, %s", domain.UserTypeFreelancer, domain.UserTypeEmployer)
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fmt.Sprintf("failed on '%s'", fe.Tag())
	}
}

// abortWithStorageError maps a storage failure to its HTTP status and logs it
func abortWithStorageError(c *gin.Context, op string, err error) {
	status, code, msg := http.StatusInternalServerError, CodeInternal, "internal server error"
	switch {
	case errors.Is(err, db.ErrUniqueViolation):
		status, code, msg = http.StatusConflict, CodeUniqueViolation, "a record with the same unique field already exists"
	case errors.Is(err, db.ErrForeignKeyViolation):
		status, code, msg = http.StatusBadRequest, CodeForeignKeyViolation, "referenced user does not exist"
	case errors.Is(err, db.ErrNotFound):
		status, code, msg = http.StatusNotFound, CodeNotFound, "not found"
	case errors.Is(err, db.ErrStorageUnavailable):
		status, code, msg = http.StatusServiceUnavailable, CodeStorageUnavailable, "storage unavailable"
	}
	entry := logrus.WithFields(logrus.Fields{
		"request_id": c.GetString(middleware.RequestIDKey),
		"op":         op,
		"status":     status,
		"error":      err.Error(),
	})
	if status >= http.StatusInternalServerError {
		entry.Error("Storage operation failed")
	} else {
		entry.Warn("Storage operation rejected")
	}
	_ = c.Error(err) // Surface to the request logger
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg, Code: code})
}
