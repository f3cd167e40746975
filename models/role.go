package models

// Role determines which workflow transitions a ticket session may originate.
// It is derived per ticket from the ticketing platform's role lookup.
type Role string

const (
	RoleRequester     Role = "requester"
	RoleAdministrator Role = "administrator"
)

// RoleFromLookup converts the platform's boolean role answer into a Role.
func RoleFromLookup(isAdministrator bool) Role {
	if isAdministrator {
		return RoleAdministrator
	}
	return RoleRequester
}
