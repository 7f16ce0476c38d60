package admin_controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cnagroup/cnacoin/config"
	"github.com/cnagroup/cnacoin/controllers"
	"github.com/cnagroup/cnacoin/controllers/auth"
	"github.com/cnagroup/cnacoin/controllers/entities"
	"github.com/cnagroup/cnacoin/controllers/helpers"
	"github.com/cnagroup/cnacoin/controllers/queries"
	"github.com/cnagroup/cnacoin/models"
	"github.com/cnagroup/cnacoin/ranking"
)

// GetStudents lists the company roster. Search, turma filter and ordering
// run in memory over the already-scoped list, mirroring what the dashboards
// do with the rows they fetch.
func GetStudents(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	params := new(queries.StudentFilters)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Validate(params, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	var students []models.User
	config.DataBase.Where("empresa_id = ? AND role = ?", CurrentUser.EmpresaID, "student").Find(&students)

	students = ranking.FilterStudents(students, params.Search, params.TurmaID)
	students = ranking.SortStudents(students, params.OrderBy)

	students_json := make([]entities.StudentEntity, 0, len(students))
	for i := range students {
		students_json = append(students_json, entities.StudentToEntity(&students[i]))
	}

	return c.Status(200).JSON(students_json)
}

func GetStudent(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	student, err := models.GetUser(CurrentUser.EmpresaID, c.Params("id"))
	if errors.Is(err, models.ErrAlunoNotFound) {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(200).JSON(entities.StudentToEntity(student))
}

func CreateStudent(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	payload := new(helpers.CreateStudentParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Validate(payload, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	student := payload.CreateStudent(CurrentUser, controllers.IdentityProvider(), errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	return c.Status(201).JSON(entities.StudentToEntity(student))
}

func UpdateStudent(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	errs := new(helpers.Errors)
	payload := new(helpers.UpdateStudentParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_message_body"},
		})
	}

	helpers.Validate(payload, errs)

	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	student := payload.UpdateStudent(CurrentUser, c.Params("id"), controllers.IdentityProvider(), errs)

	if errs.Size() > 0 {
		if errs.Errors[0] == "record.not_found" {
			return c.Status(404).JSON(errs)
		}

		return c.Status(422).JSON(errs)
	}

	return c.Status(200).JSON(entities.StudentToEntity(student))
}

// DeleteStudent removes the aluno row and (best-effort) its identity. The
// aluno's transactions are kept: the ledger outlives the account.
func DeleteStudent(c *fiber.Ctx) error {
	CurrentUser := auth.GetCurrentUser(c)

	if CurrentUser == nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"jwt.decode_and_verify"},
		})
	}

	student, err := models.GetUser(CurrentUser.EmpresaID, c.Params("id"))
	if errors.Is(err, models.ErrAlunoNotFound) {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"record.not_found"},
		})
	}
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	if controllers.IdentityProvider().Privileged() {
		if err := controllers.IdentityProvider().DeleteIdentity(student.ID); err != nil {
			config.Logger.Errorf("Failed to delete identity %s (continuing): %v", student.ID, err)
		}
	}

	if err := config.DataBase.Delete(&models.User{}, "id = ?", student.ID).Error; err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"admin.student.delete_failed"},
		})
	}

	return c.Status(200).JSON(fiber.Map{"success": true})
}
