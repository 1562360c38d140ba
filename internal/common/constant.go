// Package common contains constants, sentinel errors and small helpers shared
// by the CareerForge client packages.
package common

// HTTP headers set on every API call.
const (
	AuthorizationHeader = "Authorization"
	RequestIDHeader     = "X-Request-ID"
)

// Keys of the local session store. They mirror the storage keys of the web
// client so a state file reads the same way.
const (
	TokenKey    = "cf_token"
	EmailKey    = "cf_email"
	SubjectKey  = "cf_sub"
	LanguageKey = "cf_lang"
)

// DefaultAPIBaseURL is used when neither config nor environment provide one.
const DefaultAPIBaseURL = "https://careerforgethronos-ai.up.railway.app"
