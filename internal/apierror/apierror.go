// Package apierror replaces huma's default problem+json error with the
// {"message": ...} envelope the ledger API returns for every failure.
package apierror

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// ErrorModel is the JSON body of every error response.
type ErrorModel struct {
	status int

	Message string              `json:"message" doc:"Human readable description of the failure"`
	Errors  []*huma.ErrorDetail `json:"errors,omitempty" doc:"Field level validation details"`
}

func (e *ErrorModel) Error() string {
	return e.Message
}

func (e *ErrorModel) GetStatus() int {
	return e.status
}

// New builds an ErrorModel. Details of server-side failures are dropped so
// storage errors never reach clients; callers log them instead.
func New(status int, message string, errs ...error) huma.StatusError {
	model := &ErrorModel{
		status:  status,
		Message: message,
	}
	if status >= http.StatusInternalServerError {
		return model
	}

	for _, err := range errs {
		if err == nil {
			continue
		}
		var detailer huma.ErrorDetailer
		if errors.As(err, &detailer) {
			model.Errors = append(model.Errors, detailer.ErrorDetail())
			continue
		}
		model.Errors = append(model.Errors, &huma.ErrorDetail{Message: err.Error()})
	}
	return model
}

func init() {
	huma.NewError = New
}
