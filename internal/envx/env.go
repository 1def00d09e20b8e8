// Package envx reads the IVAO secrets from the environment, optionally
// seeded from a dotenv file.
package envx

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/levantva/crewcenter/internal/client/client"
)

const (
	APIKeyVar      = "IVAO_API_KEY"
	BearerTokenVar = "IVAO_BEARER_TOKEN"
)

// DefaultFile is the dotenv file read when none is given.
const DefaultFile = ".env"

// LoadCredentials loads file into the environment, without overriding
// variables already set, and returns the IVAO credentials. A missing or
// unreadable file is reported through err while the credentials already
// present in the environment are still returned.
func LoadCredentials(file string) (client.Credentials, error) {
	var err error
	if file != "" {
		err = godotenv.Load(file)
	}
	return client.Credentials{
		APIKey:      os.Getenv(APIKeyVar),
		BearerToken: os.Getenv(BearerTokenVar),
	}, err
}
