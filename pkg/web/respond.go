package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RespondError aborts the request with the status code and body mapped from err.
func RespondError(gctx *gin.Context, err error) {
	l := zerolog.Ctx(gctx.Request.Context())

	code, body := FromError(err)
	if code >= http.StatusInternalServerError {
		l.Error().Err(err).Send()
	} else {
		l.Info().Err(err).Send()
	}

	gctx.AbortWithStatusJSON(code, body)
}

// RespondBindingError aborts the request with 400 for malformed input.
func RespondBindingError(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
	gctx.AbortWithStatusJSON(http.StatusBadRequest, BindingError(err))
}
