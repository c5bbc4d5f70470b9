package model

// User is read-only from the application's perspective; accounts are
// created and managed directly in the hosted backend. The password is
// stored and compared in plaintext there (see DESIGN.md, known
// limitations).
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
