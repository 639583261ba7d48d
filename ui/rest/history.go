package rest

import (
	"github.com/gofiber/fiber/v2"

	domainHistory "github.com/voicebook/voicebook/domains/history"
	"github.com/voicebook/voicebook/pkg/cost"
	"github.com/voicebook/voicebook/pkg/utils"
)

type History struct {
	Service domainHistory.IHistoryUsecase
}

func InitRestHistory(app fiber.Router, service domainHistory.IHistoryUsecase) History {
	rest := History{Service: service}
	app.Get("/history", rest.Recent)
	app.Get("/history/total", rest.TotalSpent)

	return rest
}

func (handler *History) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)

	entries, err := handler.Service.Recent(c.UserContext(), limit)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "History retrieved",
		Results: entries,
	})
}

func (handler *History) TotalSpent(c *fiber.Ctx) error {
	total, err := handler.Service.TotalSpent(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Total spend retrieved",
		Results: fiber.Map{
			"total":   total,
			"display": cost.FormatForDisplay(total),
		},
	})
}
