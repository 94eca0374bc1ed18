package models

// User is an account row from the "Usuario" table.
// Only the identity columns are read; the password is compared by the
// lookup query itself and never leaves the request that carried it.
type User struct {
	// UserID is the "id_usuario" column. It is not part of the login payload.
	UserID int64 `json:"-"`

	// Login is the unique user login.
	Login string `json:"login"`

	// Password is the plaintext password ("senha") supplied at login.
	Password string `json:"senha"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "Usuario"
}
