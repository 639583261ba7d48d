package validations

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/voicebook/voicebook/config"
	domainGenerate "github.com/voicebook/voicebook/domains/generate"
	pkgError "github.com/voicebook/voicebook/pkg/error"
)

func ValidateGenerationRequest(ctx context.Context, request domainGenerate.GenerationRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Text, validation.Required, validation.By(notBlank), validation.By(withinMaxLength)),
		validation.Field(&request.Voice, validation.Required, validation.By(supportedVoice)),
		validation.Field(&request.Speed, validation.Required,
			validation.Min(domainGenerate.SpeedMin), validation.Max(domainGenerate.SpeedMax)),
		validation.Field(&request.Quality, validation.Required, validation.By(supportedQuality)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateEstimateRequest(ctx context.Context, request domainGenerate.EstimateRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Quality, validation.Required, validation.By(supportedQuality)),
		validation.Field(&request.CharacterCount, validation.Min(0)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func notBlank(value any) error {
	text, _ := value.(string)
	if strings.TrimSpace(text) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

func withinMaxLength(value any) error {
	text, _ := value.(string)
	if utf8.RuneCountInString(text) > config.MaxTextLength {
		return errors.New("exceeds the maximum text length")
	}
	return nil
}

func supportedVoice(value any) error {
	voice, _ := value.(domainGenerate.Voice)
	if !voice.Valid() {
		return errors.New("unsupported voice")
	}
	return nil
}

func supportedQuality(value any) error {
	quality, _ := value.(domainGenerate.Quality)
	if !quality.Valid() {
		return errors.New("must be standard or hd")
	}
	return nil
}
