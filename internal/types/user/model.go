package user

// User is the session identity. ID is the email the shopper signed in with.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}
