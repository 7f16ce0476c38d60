package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cnagroup/cnacoin/config"
	"github.com/cnagroup/cnacoin/controllers/entities"
	"github.com/cnagroup/cnacoin/controllers/helpers"
	"github.com/cnagroup/cnacoin/models"
	"github.com/cnagroup/cnacoin/services/identity_service"
)

var identityProvider *identity_service.Client

// IdentityProvider returns the shared identity provider client. It is built
// on first use so the environment has already been loaded.
func IdentityProvider() *identity_service.Client {
	if identityProvider == nil {
		identityProvider = identity_service.NewClient()
	}

	return identityProvider
}

// CreateSession logs a user in. Credentials are checked against the identity
// provider when one is configured, otherwise against the local password
// hash; either way the session token is minted here.
func CreateSession(c *fiber.Ctx) error {
	errs := new(helpers.Errors)
	payload := new(helpers.SessionParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Validate(payload, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	user, err := models.GetUserByEmail(payload.Email)
	if errors.Is(err, models.ErrAlunoNotFound) {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"identity.session.invalid_credentials"},
		})
	}
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	if IdentityProvider().Enabled() {
		if _, err := IdentityProvider().SignIn(user.Email, payload.Senha); err != nil {
			if errors.Is(err, identity_service.ErrInvalidCredentials) {
				return c.Status(401).JSON(helpers.Errors{
					Errors: []string{"identity.session.invalid_credentials"},
				})
			}

			config.Logger.Errorf("Identity provider sign-in failed for %s: %v", user.Email, err)

			return c.Status(500).JSON(helpers.Errors{
				Errors: []string{"server.internal_error"},
			})
		}
	} else if user.CheckPassword(payload.Senha) != nil {
		return c.Status(401).JSON(helpers.Errors{
			Errors: []string{"identity.session.invalid_credentials"},
		})
	}

	token, err := helpers.GenerateSession(user)
	if err != nil {
		config.Logger.Errorf("Failed to mint session token: %v", err)

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(201).JSON(entities.SessionEntity{
		Token: token,
		User:  entities.StudentToEntity(user),
	})
}
