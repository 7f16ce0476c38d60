package helpers

import (
	"encoding/base64"
	"errors"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/cnagroup/cnacoin/models"
)

const SessionDuration = 24 * time.Hour

var ErrNoPrivateKey = errors.New("JWT_PRIVATE_KEY is not configured")

// SessionClaims is the parsed session token payload.
type SessionClaims struct {
	UID       string `json:"uid"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	EmpresaID string `json:"empresa_id"`

	jwt.StandardClaims
}

// GenerateSession mints an RS256 session token for a user. The matching
// public key is what the Authenticate middleware verifies against.
func GenerateSession(user *models.User) (string, error) {
	private_key_pem, err := base64.StdEncoding.DecodeString(os.Getenv("JWT_PRIVATE_KEY"))
	if err != nil {
		return "", err
	}
	if len(private_key_pem) == 0 {
		return "", ErrNoPrivateKey
	}

	private_key, err := jwt.ParseRSAPrivateKeyFromPEM(private_key_pem)
	if err != nil {
		return "", err
	}

	now := time.Now()

	claims := SessionClaims{
		UID:       user.ID,
		Email:     user.Email,
		Role:      user.Role,
		EmpresaID: user.EmpresaID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(SessionDuration).Unix(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(private_key)
}
