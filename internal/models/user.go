package models

// User is a credential record. PasswordHash holds a hex-encoded digest of
// the password, never the plaintext.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
}
