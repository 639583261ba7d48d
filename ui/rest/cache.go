package rest

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	domainCache "github.com/voicebook/voicebook/domains/cache"
	"github.com/voicebook/voicebook/pkg/utils"
	"github.com/voicebook/voicebook/ui/websocket"
)

type Cache struct {
	Service domainCache.ICacheUsecase
}

func InitRestCache(app fiber.Router, service domainCache.ICacheUsecase) Cache {
	rest := Cache{Service: service}
	app.Get("/cache/stats", rest.GetStats)
	app.Post("/cache/clear", rest.ClearAll)
	app.Get("/audio/:key", rest.GetAudio)

	return rest
}

func (handler *Cache) GetStats(c *fiber.Ctx) error {
	stats, err := handler.Service.Stats(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Cache stats retrieved",
		Results: stats,
	})
}

func (handler *Cache) ClearAll(c *fiber.Ctx) error {
	removed, err := handler.Service.ClearAll(c.UserContext())
	utils.PanicIfNeeded(err)

	websocket.Broadcast <- websocket.BroadcastMessage{
		Code:    "CACHE_CLEARED",
		Message: fmt.Sprintf("Removed %d cached files", removed),
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Cache cleared successfully",
		Results: fiber.Map{"removed": removed},
	})
}

// GetAudio streams a cached artifact. Serving does not count as a cache hit;
// only the orchestrator's lookups do.
func (handler *Cache) GetAudio(c *fiber.Ctx) error {
	key := c.Params("key")

	path, ok := handler.Service.ArtifactPath(key)
	if !ok {
		return c.Status(404).JSON(utils.ResponseData{
			Status:  404,
			Code:    "NOT_FOUND_ERROR",
			Message: "No cached audio for this key",
		})
	}

	c.Set(fiber.HeaderContentType, "audio/mpeg")
	return c.SendFile(path)
}
