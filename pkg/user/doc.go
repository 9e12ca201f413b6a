// Package user is a read-only user directory used to personalise requests.
//
// A Directory maps an identifier to a User carrying an optional locale and
// timezone preference. MemoryDirectory serves a fixed set of users, usually
// loaded from YAML with LoadYAML; RedisDirectory reads hashes kept by an
// external service. Middleware resolves the user named by the "login_as" query
// parameter and stores it in the request context.
package user
