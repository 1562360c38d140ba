// Package services contains the view-models of the CareerForge client: one
// per screen, each owning its own state with an independent error per fetch.
//
// View-models depend on narrow interfaces satisfied by *api.Client, hold no
// shared cache and never retry. Local validation failures are returned as
// *common.ValidationError before any request is made.
package services

import (
	"errors"

	"github.com/thronos/careerforge/internal/client/api"
	"github.com/thronos/careerforge/internal/common"
)

// errText renders err for display.
func errText(err error) string {
	if err == nil {
		return ""
	}
	var ve *common.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return api.Message(err)
}

// Translator returns the localized text of a message key.
type Translator interface {
	T(key string) string
}
