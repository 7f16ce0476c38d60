package middlewares

import (
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/cnagroup/cnacoin/config"
	"github.com/cnagroup/cnacoin/controllers/helpers"
	"github.com/cnagroup/cnacoin/models"
)

var (
	AuthzInvalidSession = "authz.invalid_session"
	JwtDecodeAndVerify  = "jwt.decode_and_verify"
	ServerInternalError = "server.internal_error"
)

// Authenticate verifies the bearer session token against JWT_PUBLIC_KEY and
// resolves the acting user row. A token whose user no longer exists is an
// invalid session, not an internal error.
func Authenticate(c *fiber.Ctx) error {
	var claims helpers.SessionClaims

	token := c.Get("Authorization")

	if len(token) == 0 {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{AuthzInvalidSession},
		})
	}

	token = strings.Replace(token, "Bearer ", "", -1)

	public_key_pem, err := base64.StdEncoding.DecodeString(os.Getenv("JWT_PUBLIC_KEY"))
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{ServerInternalError},
		})
	}

	public_key, err := jwt.ParseRSAPublicKeyFromPEM(public_key_pem)
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{ServerInternalError},
		})
	}

	_, err = jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return public_key, nil
	})
	if err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{JwtDecodeAndVerify},
		})
	}

	var user *models.User

	result := config.DataBase.First(&user, "id = ?", claims.UID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{AuthzInvalidSession},
		})
	}
	if result.Error != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{ServerInternalError},
		})
	}

	c.Locals("CurrentUser", user)

	return c.Next()
}
