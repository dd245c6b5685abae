package service

import (
	"context"
	"fmt"
	"strings"

	"poi-finder-api/internal/apperr"
	"poi-finder-api/internal/models"

	"github.com/rs/zerolog"
)

// Default translation direction.
const (
	DefaultSourceLang = "en"
	DefaultTargetLang = "vi"
)

// Translator translates free text between languages.
type Translator interface {
	Translate(ctx context.Context, in models.TranslationRequest) (models.Translation, error)
}

// TranslateChannel is the translation side channel of a workspace.
type TranslateChannel = Channel[models.TranslationRequest, models.Translation]

// TranslateService validates requests and applies default languages.
type TranslateService struct {
	translator Translator
}

func NewTranslateService(translator Translator) *TranslateService {
	return &TranslateService{translator: translator}
}

// Translate translates in.Text, defaulting to English to Vietnamese.
func (s *TranslateService) Translate(ctx context.Context, in models.TranslationRequest) (models.Translation, error) {
	if strings.TrimSpace(in.Text) == "" {
		return models.Translation{}, apperr.InvalidInput("translate", "text cannot be empty")
	}
	if in.SourceLang == "" {
		in.SourceLang = DefaultSourceLang
	}
	if in.TargetLang == "" {
		in.TargetLang = DefaultTargetLang
	}

	result, err := s.translator.Translate(ctx, in)
	if err != nil {
		return models.Translation{}, fmt.Errorf("service: failed to translate: %w", err)
	}
	return result, nil
}

// NewTranslateChannel creates a translation side channel backed by translator.
func NewTranslateChannel(translator Translator, log zerolog.Logger) *TranslateChannel {
	return NewChannel[models.TranslationRequest, models.Translation]("translate", NewTranslateService(translator).Translate, log)
}
