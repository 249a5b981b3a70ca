package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/clubelmeta/CEM-SalonService/internal/api/handlers"
	"github.com/clubelmeta/CEM-SalonService/internal/domain"
)

type actorKey struct{}

const (
	headerStaffID   = "X-Staff-ID"
	headerStaffRole = "X-Staff-Role"

	msgMissingStaffHeaders = "требуются заголовки X-Staff-ID и X-Staff-Role"
	msgInvalidStaffID      = "некорректный X-Staff-ID"
	msgUnknownStaffRole    = "неизвестная роль сотрудника"
)

// StaffAuth проверяет заголовки персонала и кладёт Actor в контекст.
// Маршруты персонала без корректных заголовков получают 401.
func StaffAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idValue := r.Header.Get(headerStaffID)
		roleValue := r.Header.Get(headerStaffRole)

		if idValue == "" || roleValue == "" {
			handlers.RespondUnauthorized(w, msgMissingStaffHeaders)
			return
		}

		id, err := strconv.ParseInt(idValue, 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidStaffID)
			return
		}

		role := domain.StaffRole(roleValue)
		if role != domain.RoleAdmin && role != domain.RoleAssistant {
			handlers.RespondUnauthorized(w, msgUnknownStaffRole)
			return
		}

		actor := domain.Actor{ID: id, Role: role}
		ctx := context.WithValue(r.Context(), actorKey{}, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ActorFromContext достает Actor, положенный StaffAuth.
// Второе значение false, если запрос прошёл мимо middleware.
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(domain.Actor)
	return actor, ok
}
