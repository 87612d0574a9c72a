package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	rsvalidator "roadsketch/pkg/validator"
)

const DefaultMaxBody = 4 << 20

type bodyKey struct{}

// BindJSON decodes the request body into a fresh T, validates it and puts it
// in the request context for Body to pick up.
func BindJSON[T any](maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBody
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var target T
			dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBytes))
			if err := dec.Decode(&target); err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					WriteJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "body too large"})
					return
				}
				WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
				return
			}
			if err := dec.Decode(&struct{}{}); err != io.EOF {
				WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
				return
			}

			if err := rsvalidator.ValidateStruct(target); err != nil {
				WriteJSON(w, http.StatusBadRequest, map[string]any{
					"error":  "validation failed",
					"fields": fieldErrors(err),
				})
				return
			}

			ctx := context.WithValue(r.Context(), bodyKey{}, target)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func Body[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(bodyKey{}).(T)
	return v, ok
}

func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = err.Error()
		return out
	}
	for _, fe := range ve {
		out[fe.Namespace()] = fe.Tag()
	}
	return out
}

func WriteJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
