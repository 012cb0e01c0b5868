package models

// User is a registered customer account. The password is stored in plaintext:
// this is a non-persistent demo, nothing here survives a restart. Email
// uniqueness is checked only at registration time, by the caller.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"-"`
}
