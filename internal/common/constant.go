package common

// Persistence keys used by the session store and the language preference.
const (
	SessionKey  = "levant_user"
	LanguageKey = "language"
)

// Header names sent to the flight-network API.
const (
	AuthorizationHeaderName = "Authorization"
	APIKeyHeaderName        = "X-API-Key"
)
