package rest

import (
	"github.com/gofiber/fiber/v2"

	domainGenerate "github.com/voicebook/voicebook/domains/generate"
	"github.com/voicebook/voicebook/pkg/utils"
	"github.com/voicebook/voicebook/ui/websocket"
)

type Generate struct {
	Service domainGenerate.IGenerateUsecase
}

func InitRestGenerate(app fiber.Router, service domainGenerate.IGenerateUsecase) Generate {
	rest := Generate{Service: service}
	app.Post("/generate", rest.Generate)
	app.Post("/estimate", rest.Estimate)
	app.Get("/voices", rest.ListVoices)

	return rest
}

func (handler *Generate) Generate(c *fiber.Ctx) error {
	var request domainGenerate.GenerationRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	websocket.Broadcast <- websocket.BroadcastMessage{
		Code:    "GENERATION_STARTED",
		Message: "Speech generation started",
	}

	response, err := handler.Service.Generate(c.UserContext(), request)
	if err != nil {
		// Pair every STARTED with a terminal event so the UI's progress
		// state never dangles.
		websocket.Broadcast <- websocket.BroadcastMessage{
			Code:    "GENERATION_FAILED",
			Message: err.Error(),
		}
	}
	utils.PanicIfNeeded(err)

	websocket.Broadcast <- websocket.BroadcastMessage{
		Code:    "GENERATION_COMPLETED",
		Message: "Speech generation completed",
		Result:  response,
	}

	message := "Audio generated successfully"
	if response.FromCache {
		message = "Audio served from cache"
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: message,
		Results: response,
	})
}

func (handler *Generate) Estimate(c *fiber.Ctx) error {
	var request domainGenerate.EstimateRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	response, err := handler.Service.Estimate(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Cost estimated",
		Results: response,
	})
}

func (handler *Generate) ListVoices(c *fiber.Ctx) error {
	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Voices retrieved",
		Results: handler.Service.ListVoices(c.UserContext()),
	})
}
