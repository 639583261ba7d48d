package rest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/voicebook/voicebook/config"
	domainDocument "github.com/voicebook/voicebook/domains/document"
	"github.com/voicebook/voicebook/pkg/textclean"
	"github.com/voicebook/voicebook/pkg/utils"
)

type Document struct {
	Service domainDocument.IDocumentUsecase
}

func InitRestDocument(app fiber.Router, service domainDocument.IDocumentUsecase) Document {
	rest := Document{Service: service}
	app.Post("/documents/parse", rest.Parse)
	app.Get("/documents/formats", rest.ListFormats)
	app.Post("/text/clean", rest.CleanText)

	return rest
}

type parseResponse struct {
	Text    string          `json:"text"`
	Format  string          `json:"format"`
	Stats   textclean.Stats `json:"stats"`
	Preview string          `json:"preview"`
}

type cleanTextRequest struct {
	Text    string             `json:"text"`
	Options *textclean.Options `json:"options"`
}

type cleanTextResponse struct {
	Text  string          `json:"text"`
	Stats textclean.Stats `json:"stats"`
}

func (handler *Document) Parse(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: "missing file upload",
		})
	}

	maxBytes := config.MaxUploadSizeMB * 1024 * 1024
	if file.Size > maxBytes {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "VALIDATION_ERROR",
			Message: fmt.Sprintf("file too large (%d bytes), maximum is %dMB", file.Size, config.MaxUploadSizeMB),
		})
	}

	// Capability query before dispatch; unsupported formats never reach
	// the parser.
	ext := filepath.Ext(file.Filename)
	if !handler.Service.IsFormatSupported(ext) {
		return c.Status(422).JSON(utils.ResponseData{
			Status:  422,
			Code:    "PARSE_ERROR",
			Message: fmt.Sprintf("unsupported file type %q, supported: %s", ext, strings.Join(handler.Service.SupportedFormats(), ", ")),
		})
	}

	tempPath := filepath.Join(config.PathUploads, uuid.NewString()+strings.ToLower(ext))
	if err := c.SaveFile(file, tempPath); err != nil {
		return c.Status(500).JSON(utils.ResponseData{
			Status:  500,
			Code:    "INTERNAL_SERVER_ERROR",
			Message: "failed to store upload: " + err.Error(),
		})
	}
	defer os.Remove(tempPath)

	result, err := handler.Service.Parse(c.UserContext(), tempPath)
	utils.PanicIfNeeded(err)

	text := result.Text
	if c.FormValue("clean", "true") != "false" {
		text = textclean.Clean(text, cleanOptionsFromConfig())
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Document parsed successfully",
		Results: parseResponse{
			Text:    text,
			Format:  result.Format,
			Stats:   textclean.TextStats(text),
			Preview: textclean.Preview(text, 500),
		},
	})
}

func (handler *Document) ListFormats(c *fiber.Ctx) error {
	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Supported formats retrieved",
		Results: handler.Service.SupportedFormats(),
	})
}

func (handler *Document) CleanText(c *fiber.Ctx) error {
	var request cleanTextRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: err.Error(),
		})
	}

	opts := cleanOptionsFromConfig()
	if request.Options != nil {
		opts = *request.Options
	}

	cleaned := textclean.Clean(request.Text, opts)
	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Text cleaned",
		Results: cleanTextResponse{
			Text:  cleaned,
			Stats: textclean.TextStats(cleaned),
		},
	})
}

func cleanOptionsFromConfig() textclean.Options {
	return textclean.Options{
		StripPageNumbers:    config.CleanStripPageNumbers,
		StripURLs:           config.CleanStripURLs,
		NormalizeBullets:    config.CleanNormalizeBullets,
		NormalizeQuotes:     config.CleanNormalizeQuotes,
		NormalizeWhitespace: config.CleanNormalizeWhitespace,
	}
}
