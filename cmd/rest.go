package cmd

import (
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	globalConfig "github.com/voicebook/voicebook/config"
	"github.com/voicebook/voicebook/ui/rest"
	"github.com/voicebook/voicebook/ui/rest/middleware"
	"github.com/voicebook/voicebook/ui/websocket"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Serve the web UI and HTTP API",
	Long:  `Starts the local web server: REST API under /api plus the embedded single page UI.`,
	Run:   restServer,
}

func init() {
	rootCmd.AddCommand(restCmd)
}

func restServer(_ *cobra.Command, _ []string) {
	app := fiber.New(fiber.Config{
		BodyLimit:             int(globalConfig.MaxUploadSizeMB) * 1024 * 1024,
		Network:               "tcp",
		AppName:               "Voicebook",
		DisableStartupMessage: false,
		ServerHeader:          "Hidden",
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.Recovery())
	app.Use(helmet.New(helmet.Config{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        300,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	if globalConfig.AppDebug {
		app.Use(logger.New())
	}

	apiGroup := app.Group(globalConfig.AppBasePath + "/api")

	// Basic auth is optional; the app binds locally by default.
	if len(globalConfig.AppBasicAuthCredential) > 0 {
		account := make(map[string]string)
		for _, basicAuth := range globalConfig.AppBasicAuthCredential {
			ba := strings.Split(basicAuth, ":")
			if len(ba) != 2 {
				logrus.Fatalln("Basic auth is not valid, please use the format <user>:<secret>")
			}
			account[ba[0]] = ba[1]
		}

		apiGroup.Use(basicauth.New(basicauth.Config{
			Users: account,
			Next: func(c *fiber.Ctx) bool {
				return c.Method() == fiber.MethodOptions
			},
		}))
	}

	// Graceful shutdown handler
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[REST] Received termination signal, shutting down gracefully...")
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("[REST] Error during Fiber shutdown: %v", err)
		}
	}()

	rest.InitRestGenerate(apiGroup, generateUsecase)
	rest.InitRestDocument(apiGroup, documentUsecase)
	rest.InitRestCache(apiGroup, cacheUsecase)
	rest.InitRestHistory(apiGroup, historyUsecase)
	rest.InitRestHealth(apiGroup, healthUsecase)

	// Websocket
	websocket.RegisterRoutes(apiGroup, healthUsecase)
	go websocket.RunHub()

	// 404 Handler ONLY for the API group to prevent fallthrough to the SPA fallback
	apiGroup.All("/*", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "API Endpoint not found",
			"path":  c.Path(),
		})
	})

	app.Use(globalConfig.AppBasePath+"/", filesystem.New(filesystem.Config{
		Root:       http.FS(EmbedViews),
		PathPrefix: "views",
		Browse:     false,
		Index:      "index.html",
	}))

	// SPA fallback for non-API, non-file routes
	app.Get(globalConfig.AppBasePath+"/*", func(c *fiber.Ctx) error {
		path := c.Path()
		if strings.HasPrefix(path, globalConfig.AppBasePath+"/api") || strings.Contains(path, ".") {
			return c.Next()
		}

		file, err := EmbedViews.ReadFile("views/index.html")
		if err != nil {
			return c.Status(fiber.StatusNotFound).SendString("UI not found")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(file)
	})

	if err := app.Listen(":" + globalConfig.AppPort); err != nil {
		logrus.Fatalln("Failed to start: ", err.Error())
	}
}
