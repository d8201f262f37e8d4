package middleware

import (
	"net/http"

	"github.com/Paarth01/lifelink-ui-connect/internal/domain/entity"
	"github.com/Paarth01/lifelink-ui-connect/pkg/response"
)

// RequireRole guards a dashboard subtree: an authenticated session whose role
// is not in the allowed set gets a 403, never a silent role elevation.
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			for _, allowed := range allowedRoleIDs {
				if roleID == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequireAdmin guards admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequireDonor guards donor-only endpoints
func RequireDonor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDDonor)(next)
}

// RequireHospital guards hospital-only endpoints
func RequireHospital(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDHospital)(next)
}

// RequireNGO guards NGO-only endpoints
func RequireNGO(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDNGO)(next)
}
