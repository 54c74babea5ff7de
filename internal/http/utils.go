package http

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/calcunits/internal/types"
)

// StatusFor maps a result code to an HTTP status
func StatusFor(code string) int {
	switch code {
	case types.CodeInvalidInput:
		return http.StatusBadRequest
	case types.CodeUnknownUnit, types.CodeUnknownTool:
		return http.StatusNotFound
	case types.CodeIncompatibleCategories, types.CodeDivideByZero:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a failed Result with the status for code
func respondError(c *gin.Context, code, message string) {
	c.JSON(StatusFor(code), types.Result{
		Success: false,
		Error:   &message,
		Code:    code,
	})
}

// bindJSON decodes the body into v, answering 413 when the body exceeds
// the BodyLimit cap and 400 when it is malformed.
func bindJSON(c *gin.Context, v interface{}) bool {
	err := c.ShouldBindJSON(v)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		msg := fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)
		c.JSON(http.StatusRequestEntityTooLarge, types.Result{Success: false, Error: &msg, Code: types.CodeInvalidInput})
		return false
	}
	respondError(c, types.CodeInvalidInput, err.Error())
	return false
}

func respondErr(c *gin.Context, err error) {
	respondError(c, codeOf(err), err.Error())
}

func serviceOf(toolID string) string {
	if i := strings.IndexByte(toolID, '.'); i > 0 {
		return toolID[:i]
	}
	return toolID
}

// nonFinite reports the first float field that JSON cannot encode
func nonFinite(data map[string]interface{}) (string, bool) {
	for key, v := range data {
		if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			return key, true
		}
	}
	return "", false
}
