package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on outbound requests to the resource API.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix prefixes the token value in the authorization header.
const BearerPrefix = "Bearer "

// Role values recognized by the access policy.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
