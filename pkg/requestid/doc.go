// Package requestid tags every request with an id stored in the context and
// echoed in the X-Request-ID response header. Client supplied ids are kept
// when they are made of letters, digits, "-" and "_" and are at most 128
// bytes long; anything else is replaced by a UUIDv7.
//
// LoggerExtractor adds the id to log records as "request_id".
package requestid
