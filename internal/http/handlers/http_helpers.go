package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/inventory-dashboard/internal/apperr"
)

const maxBodyBytes = 1048576 // one megabyte

// readJSON decodes exactly one JSON value from the request body.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(data); err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must have only a single json value")
	}
	return nil
}

// writeJSON writes data with the given status code.
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(out); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}
	return nil
}

func (s *Server) respond(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		s.log.Warn("failed to write JSON response", zap.Error(err))
	}
}

// fail renders err through the error taxonomy. Unexpected errors are logged and hidden.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status, category, message := apperr.Map(err)
	resp := ErrorResponse{Code: status, Category: category, Message: message}

	var many apperr.ValidationErrors
	var one *apperr.ValidationError
	switch {
	case errors.As(err, &many):
		for _, v := range many {
			resp.Errors = append(resp.Errors, FieldError{Field: v.Field, Reason: v.Reason})
		}
	case errors.As(err, &one):
		resp.Errors = []FieldError{{Field: one.Field, Reason: one.Reason}}
	}

	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	s.respond(w, status, resp)
}

func (s *Server) failStatus(w http.ResponseWriter, status int, category, message string) {
	s.respond(w, status, ErrorResponse{Code: status, Category: category, Message: message})
}

func (s *Server) badRequest(w http.ResponseWriter, op, field, reason string) {
	s.fail(w, apperr.Validation(op, field, reason))
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format", name)
	}
	return &v, nil
}

func queryFloat(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format", name)
	}
	return &v, nil
}

// queryTime parses an optional RFC3339 timestamp. Query decoding turns a "+" offset into a
// space, so that is reversed before parsing.
func queryTime(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	if len(raw) == len(time.RFC3339) && raw[len(raw)-6] == ' ' {
		raw = raw[:len(raw)-6] + "+" + raw[len(raw)-5:]
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date format", name)
	}
	return &ts, nil
}
