package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError adalah satu field yang gagal validasi binding.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// FlattenValidationErrors mengubah error binding gin menjadi daftar semua
// field yang gagal, bukan hanya yang pertama.
func FlattenValidationErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Reason: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		reason := fe.Tag()
		if fe.Param() != "" {
			reason = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
		}
		out = append(out, FieldError{
			Field:  strings.ToLower(fe.Field()),
			Reason: reason,
		})
	}
	return out
}

// RespondValidationError -> 400 dengan daftar field yang gagal.
func RespondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  false,
		"message": "validation failed",
		"errors":  FlattenValidationErrors(err),
	})
}
