package account

import "fmt"

// Credentials is the login pair typed into the Riot Client form.
// It lives for a single switch and is never written anywhere.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewCredentials(username, password string) Credentials {
	return Credentials{
		Username: username,
		Password: password,
	}
}

// String keeps the password out of fmt and log output.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{Username: %q, Password: <redacted>}", c.Username)
}

func (c Credentials) GoString() string {
	return c.String()
}
