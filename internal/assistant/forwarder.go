// Package assistant forwards user prompts to Gemini and turns every failure
// into a localized fallback string.
package assistant

import (
	"context"
	"errors"
	"fmt"

	"askgemini/internal/gemini"

	"github.com/sirupsen/logrus"
)

const maskedEmpty = "(empty)"

// Generator produces text for a prompt. *gemini.Client implements it.
type Generator interface {
	GenerateText(ctx context.Context, apiKey, prompt string) (string, error)
	URL() string
}

// KeySource yields the API key for the next call. *keys.Rotator implements it.
type KeySource interface {
	Next() string
}

// Result is the answer text together with how it was obtained.
type Result struct {
	Text string `json:"answer"`
	Kind Kind   `json:"outcome"`
}

// Forwarder sends one prompt per call to the generator.
type Forwarder struct {
	generator Generator
	keys      KeySource
	messages  Messages
	log       *logrus.Logger
}

// NewForwarder creates a Forwarder. Empty entries in messages fall back to
// the default catalog.
func NewForwarder(generator Generator, keys KeySource, messages Messages, logger *logrus.Logger) *Forwarder {
	defaults, _ := Catalog(DefaultLocale)
	return &Forwarder{
		generator: generator,
		keys:      keys,
		messages:  defaults.Merge(messages),
		log:       logger,
	}
}

// MaskKey shortens an API key to its first and last four characters.
func MaskKey(key string) string {
	if len(key) < 8 {
		return maskedEmpty
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// Ask returns the generated text for prompt, or a fallback message.
func (f *Forwarder) Ask(ctx context.Context, prompt string) string {
	return f.Answer(ctx, prompt).Text
}

// Answer is Ask plus the outcome kind.
func (f *Forwarder) Answer(ctx context.Context, prompt string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			f.log.WithField("panic", fmt.Sprint(r)).Error("Gemini call panicked")
			res = Result{Text: f.messages.Generic, Kind: TransportOrParseError}
		}
	}()

	apiKey := f.keys.Next()
	f.log.WithFields(logrus.Fields{
		"api_key": MaskKey(apiKey),
		"url":     f.generator.URL(),
	}).Info("Forwarding prompt to Gemini")

	text, err := f.generator.GenerateText(ctx, apiKey, prompt)
	if err == nil {
		return Result{Text: text, Kind: OK}
	}

	kind := Classify(err)
	fields := logrus.Fields{"outcome": kind.String()}
	var apiErr *gemini.APIError
	if errors.As(err, &apiErr) {
		fields["status"] = apiErr.StatusCode
		fields["body"] = apiErr.Body
	}
	f.log.WithFields(fields).WithError(err).Error("Gemini call failed")

	return Result{Text: f.messages.For(kind), Kind: kind}
}
