package models

// Operator is a treasurer or team manager allowed to post ledger entries
// when operator auth is enabled. Operators are configured, not stored.
type Operator struct {
	// Name is shown as the handler of entries the operator posts.
	Name string

	// PasswordHash is a bcrypt hash.
	PasswordHash string
}
