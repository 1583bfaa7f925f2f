package model

// Role classifies a registered portal account.
type Role string

const (
	RoleCitizen Role = "ciudadano"
	RoleAdmin   Role = "admin"
)

// ReservedAdminEmail identifies the administrative account that is never
// part of a broadcast audience, whatever its role says.
const ReservedAdminEmail = "admin@manta.gob.ec"

// Recipient is a registered portal resident, owned by the external
// identity service. Immutable for this subsystem.
type Recipient struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
}

// IsCitizen reports whether the recipient is an eligible citizen account.
func (r Recipient) IsCitizen() bool {
	return r.Role == RoleCitizen && r.Email != ReservedAdminEmail
}
