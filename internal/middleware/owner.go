package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"roadsketch/pkg/e"
)

const OwnerHeader = "X-User-ID"

type ownerKey struct{}

// Owner requires a UUID in the X-User-ID header. Every stored sketch is
// scoped to it.
func Owner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.Header.Get(OwnerHeader))
		if err != nil || id == uuid.Nil {
			WriteJSON(w, http.StatusBadRequest, map[string]string{"error": e.ErrInvalidOwner.Error()})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithOwner(r.Context(), id)))
	})
}

func WithOwner(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerKey{}, id)
}

func OwnerFrom(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(ownerKey{}).(uuid.UUID)
	if !ok {
		return uuid.Nil, e.ErrInvalidOwner
	}
	return id, nil
}
