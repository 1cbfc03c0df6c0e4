package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/hlog"
)

type HttpError struct {
	Code int
	Err  error
}

func (e *HttpError) Error() string {
	return e.Err.Error()
}

func (e *HttpError) Cause() error {
	return e.Err
}

func (e *HttpError) Abort(w http.ResponseWriter, r *http.Request) {
	event := hlog.FromRequest(r).Warn()
	if e.Code >= http.StatusInternalServerError {
		event = hlog.FromRequest(r).Error()
	}
	event.Err(e.Err).Int("code", e.Code).Msg("request aborted")

	RespondWithError(w, e.Code, e.Err.Error())
}

func NewHttpError(code int, err error) *HttpError {
	return &HttpError{Code: code, Err: err}
}

func NewBadRequestError(err error) *HttpError {
	return NewHttpError(http.StatusBadRequest, err)
}

func NewNotFoundError(err error) *HttpError {
	return NewHttpError(http.StatusNotFound, err)
}

func NewInternalError(err error) *HttpError {
	return NewHttpError(http.StatusInternalServerError, err)
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, map[string]string{"error": message})
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(code)
	w.Write(response)
}
