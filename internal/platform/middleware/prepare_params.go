package middleware

import (
	"net/http"
	"reflect"

	platformErrors "bitbucket.org/velvet/chauffeur-hub/internal/platform/errors"
	"github.com/gin-gonic/gin"
)

const (
	ParamsKey string = "params"
)

// PrepareParams binds the request into a fresh value of val's type and stores
// a pointer to it under ParamsKey.
func PrepareParams(val any) gin.HandlerFunc {
	value := reflect.ValueOf(val)
	if value.Kind() == reflect.Ptr {
		panic(`Bind struct can not be a pointer.`)
	}

	typ := value.Type()

	return func(ctx *gin.Context) {
		params := reflect.New(typ).Interface()

		if err := ctx.ShouldBind(params); err != nil {
			platformErrors.HandleError(ctx, http.StatusBadRequest, "Failed to bind request params", platformErrors.BadParams(err))
			return
		}

		ctx.Set(ParamsKey, params)
	}
}
