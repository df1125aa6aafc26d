package domain

// Actor roles
const (
	RoleJobseeker = "jobseeker"
	RoleRecruiter = "recruiter"
	RoleAdmin     = "admin"
)

// Actor is the authenticated identity attached to every request by the auth
// middleware. The rest of the system only ever sees this normalized shape;
// ownership checks compare Actor.ID against Job.PostedBy, never the email.
type Actor struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

// IsValidRole reports whether r is one of the known actor roles.
func IsValidRole(r string) bool {
	return r == RoleJobseeker || r == RoleRecruiter || r == RoleAdmin
}

type CtxKey string

const (
	// KeyActor is the gin context key under which the resolved Actor is stored.
	KeyActor CtxKey = "Actor"
)
