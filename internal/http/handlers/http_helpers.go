package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	mw "github.com/rogerio-castellano/inventory-service/internal/http/middleware"
	"github.com/rogerio-castellano/inventory-service/internal/inventory"
	"go.uber.org/zap"
)

const maxBodyBytes = 1048576 // one megabyte

// readJSON decodes a single JSON value from the request body into data.
// A body of the wrong JSON type is not fatal: data keeps its zero value and the
// validation step reports the missing fields.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	var typeErr *json.UnmarshalTypeError
	if err != nil && !errors.As(err, &typeErr) {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		h.logger.Error("failed to write JSON response",
			zap.String("request_id", mw.RequestIDFromContext(r.Context())),
			zap.Error(err),
		)
	}
}

func (h *Handler) respondErrors(w http.ResponseWriter, r *http.Request, status int, messages ...string) {
	h.respond(w, r, status, ErrorResponse{Errors: messages})
}

// respondServiceError maps validation failures to 400 and anything else to a logged 500.
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs inventory.ValidationErrors
	if errors.As(err, &verrs) {
		h.respondErrors(w, r, http.StatusBadRequest, verrs...)
		return
	}
	h.internalError(w, r, err)
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", mw.RequestIDFromContext(r.Context())),
		zap.Error(err),
	)
	h.respondErrors(w, r, http.StatusInternalServerError, MsgInternalError)
}
