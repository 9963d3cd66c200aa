package resp

import (
	"net/http"

	"pokedex/server/biz/model/dto"
	"pokedex/server/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
)

var statusByKind = map[errs.Kind]int{
	errs.KindPayloadParsing:   http.StatusBadRequest,
	errs.KindUserVerification: http.StatusUnauthorized,
	errs.KindUserSearch:       http.StatusNotFound,
	errs.KindUserCreation:     http.StatusConflict,
	errs.KindDBError:          http.StatusInternalServerError,
	errs.KindTransactionError: http.StatusInternalServerError,
}

func Success(c *app.RequestContext, data any) {
	c.JSON(http.StatusOK, data)
}

func Empty(c *app.RequestContext) {
	c.Status(http.StatusOK)
}

// Fail maps the failure kind to its HTTP status and writes the typed
// error body. Stored salts and hashes never travel through here: the
// body carries only kind and message.
func Fail(c *app.RequestContext, bizErr errs.Error) {
	status, ok := statusByKind[bizErr.Kind()]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, &dto.ErrorResp{
		Type:    string(bizErr.Kind()),
		Message: bizErr.Msg(),
	})
}
