package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/airport/internal/app/models/dto"
	"github.com/yigit/airport/internal/pkg/logger"
	"github.com/yigit/airport/internal/pkg/validation"
)

var registerRules sync.Once

// ensureRules registers the custom binding rules on gin's validator
func ensureRules() {
	registerRules.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := validation.RegisterRules(v); err != nil {
			logger.Error().Err(err).Msg("Failed to register validation rules")
		}
	})
}

// BindRequest binds the body, form or multipart form of the request into obj
// using its binding tags. On failure it writes a 400 response and returns false.
func BindRequest(c *gin.Context, obj interface{}) bool {
	ensureRules()
	if err := c.ShouldBind(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}

// BindQuery binds the query string into obj
func BindQuery(c *gin.Context, obj interface{}) bool {
	ensureRules()
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
