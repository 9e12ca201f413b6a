// Package timezone validates IANA timezone identifiers and carries the
// resolved timezone of a request through a context.Context.
//
// Validity is decided by the timezone database known to the time package.
// Binaries that must not depend on the host's zoneinfo should import
// time/tzdata. Names are matched case-insensitively against an embedded
// list of database identifiers and loaded by their canonical spelling.
// Lookups are cached, so repeated validation of the same name is cheap and
// safe for concurrent use.
//
//	name, ok := timezone.Canonicalize("europe/paris") // "Europe/Paris", true
//	_, ok = timezone.Canonicalize("Vulcan")           // "", false
//
//	ctx = timezone.WithContext(ctx, name)
//	now := time.Now().In(timezone.Location(ctx))
package timezone
