package response

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"advisor-alert-srv/pkg/discord"
	"advisor-alert-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{ErrorCode: 0, Message: MessageSuccess, Data: data}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(parseError(errors.NewUnauthorizedHTTPError(), c, nil))
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(parseError(errors.NewForbiddenHTTPError(), c, nil))
}

func parseError(err error, c *gin.Context, d discord.IDiscord) (int, Resp) {
	var verr *errors.ValidationError
	if stdErrors.As(err, &verr) {
		return http.StatusBadRequest, Resp{
			ErrorCode: verr.Code,
			Message:   verr.Error(),
			Errors:    map[string][]string{verr.Field: verr.Messages},
		}
	}
	var herr *errors.HTTPError
	if stdErrors.As(err, &herr) {
		return herr.StatusCode, Resp{ErrorCode: herr.Code, Message: herr.Message}
	}

	if d != nil && err != nil {
		reportBug(c, d, buildReport(c, err.Error(), captureStackTrace()))
	}
	return http.StatusInternalServerError, Resp{ErrorCode: InternalServerErrorCode, Message: DefaultErrorMessage}
}

// Error sends the error response. Unmapped errors become 500 and are reported to d when set.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	c.JSON(parseError(err, c, d))
}

// PanicError answers a recovered panic with a 500.
func PanicError(c *gin.Context, rec any, d discord.IDiscord) {
	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec)
	}
	c.AbortWithStatusJSON(parseError(err, c, d))
}
