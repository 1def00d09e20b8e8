// Package client is the transport layer for the IVAO flight-network API
// and the bootstrap of the local SQLite store.
//
// Client is the contract; HTTPClient implements it over net/http with a
// bearer token and API key on every request, a single attempt per call and
// a 10 second timeout. HTTP statuses map onto sentinel errors:
//
//	401, 403   ErrUnauthorized
//	404        ErrNotFound
//	5xx        ErrUnavailable
//	transport  ErrUnavailable
//
// MockFlights and MockPilots hold the records served when the API cannot
// be used. InspectBearerToken reads JWT claims for expiry warnings.
//
// InitDatabase and RunMigrations open the local store and apply the
// embedded goose migrations.
package client
