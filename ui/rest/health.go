package rest

import (
	"github.com/gofiber/fiber/v2"

	domainHealth "github.com/voicebook/voicebook/domains/health"
	"github.com/voicebook/voicebook/pkg/utils"
)

type Health struct {
	Service domainHealth.IHealthUsecase
}

func InitRestHealth(app fiber.Router, service domainHealth.IHealthUsecase) Health {
	rest := Health{Service: service}
	app.Get("/health", rest.GetStatus)

	return rest
}

func (handler *Health) GetStatus(c *fiber.Ctx) error {
	report, err := handler.Service.Check(c.UserContext())
	utils.PanicIfNeeded(err)

	status := 200
	if report.Status != domainHealth.StatusOk {
		status = 503
	}

	return c.Status(status).JSON(utils.ResponseData{
		Status:  status,
		Code:    "SUCCESS",
		Message: "Health status retrieved",
		Results: report,
	})
}
