package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Fault is what the client sees of an error. Code is stable and meant for
// branching in the UI; Message is for people.
type Fault struct {
	Status  int
	Code    string
	Message string
}

var (
	BadRequest = Fault{Status: http.StatusBadRequest, Code: "invalid_request", Message: "Invalid request format"}
	NoSession  = Fault{Status: http.StatusNotFound, Code: "session_not_found", Message: "No active booking draft"}
	Internal   = Fault{Status: http.StatusInternalServerError, Code: "internal", Message: "Internal server error"}
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(f Fault, detail any) Response {
	resp := Response{Status: f.Status, Detail: detail}
	resp.Error.Code = f.Code
	resp.Error.Message = f.Message
	return resp
}

// Abort renders f and records err on the context for the error middleware.
func Abort(c *gin.Context, f Fault, err error, detail any) {
	if err == nil {
		panic("httperr.Abort: err cannot be nil")
	}

	resp := NewResponse(f, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(f.Status, resp)
}
