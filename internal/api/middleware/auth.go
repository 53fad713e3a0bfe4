package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ServicePortal/internal/api/handlers"
	"github.com/m04kA/SMC-ServicePortal/internal/domain"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	userIDKey
	userTypeKey
)

// Заголовки аутентификации защищенных маршрутов
const (
	UserIDHeader   = "X-User-ID"
	UserTypeHeader = "X-User-Type"
)

const msgMissingUserID = "отсутствует или некорректен заголовок X-User-ID"

// UserIDFromContext возвращает ID пользователя из контекста запроса
func UserIDFromContext(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(userIDKey).(int64)
	return v, ok
}

// UserTypeFromContext возвращает тип пользователя из контекста запроса
func UserTypeFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(userTypeKey).(string); ok {
		return v
	}
	return domain.UserTypeCustomer
}

// Auth требует валидный заголовок X-User-ID на защищенных маршрутах и
// кладет идентификатор и тип пользователя в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(UserIDHeader), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
			return
		}

		userType := r.Header.Get(UserTypeHeader)
		if userType != domain.UserTypeStaff {
			userType = domain.UserTypeCustomer
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userTypeKey, userType)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
