package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/mawared/mawared-backend/internal/domain/user"
)

// claimString pulls one string claim from the verified token; missing or
// non-string claims come back as "".
func claimString(r *http.Request, key string) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	value, _ := claims[key].(string)
	return value
}

func userIDFromRequest(r *http.Request) string {
	return claimString(r, "user_id")
}

func employeeIDFromRequest(r *http.Request) string {
	return claimString(r, "employee_id")
}

func storeIDFromRequest(r *http.Request) string {
	return claimString(r, "store_id")
}

func roleFromRequest(r *http.Request) user.Role {
	return user.Role(claimString(r, "role"))
}
