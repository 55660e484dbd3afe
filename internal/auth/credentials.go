package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/table-reservations/internal/httperr"
)

var ErrInvalidCredentials = httperr.NewBusiness(httperr.CodeInvalidCredentials, "invalid credentials")

type account struct {
	username     string
	passwordHash []byte
	role         Role
}

// Credentials holds the two fixed demo accounts. Passwords are kept only
// as bcrypt hashes once the process has started.
type Credentials struct {
	accounts []account
}

type DemoAccount struct {
	Username string
	Password string
	Role     Role
}

func NewCredentials(demo ...DemoAccount) (*Credentials, error) {
	c := &Credentials{}
	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.Password), bcrypt.MinCost)
		if err != nil {
			return nil, err
		}
		c.accounts = append(c.accounts, account{
			username:     d.Username,
			passwordHash: hash,
			role:         d.Role,
		})
	}
	return c, nil
}

// Authenticate returns the role of the account whose username and password
// both match exactly.
func (c *Credentials) Authenticate(username, password string) (Role, error) {
	for _, a := range c.accounts {
		if a.username != username {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
			continue
		}
		return a.role, nil
	}
	return "", ErrInvalidCredentials
}
