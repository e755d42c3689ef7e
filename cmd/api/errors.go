package main

import (
	"net/http"
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal server error", "method", r.Method, "path", r.URL.Path, "error", err)

	writeJsonError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err)

	writeJsonError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "error", err)

	writeJsonError(w, http.StatusNotFound, "not found")
}

// unprocessableEntityResponse reports the full per-field error map so the
// client can highlight every invalid field at once.
func (app *application) unprocessableEntityResponse(w http.ResponseWriter, r *http.Request, fields map[string]string) {
	type envelope struct {
		Errors map[string]string `json:"errors"`
	}

	writeJson(w, http.StatusUnprocessableEntity, &envelope{Errors: fields})
}

// conflictResponse surfaces a business-rule block (ordering window closed,
// minimum order not met) with its customer-facing message.
func (app *application) conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	writeJsonError(w, http.StatusConflict, message)
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	w.Header().Set("Retry-After", retryAfter)

	writeJsonError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter)
}
