// Package core turns an attendee registration export into the two listings
// of the participants page.
//
// The package holds all domain logic independent of any CLI or transport
// layer. It can be used by the command line, the preview server, or tests
// without modification.
//
// # Pipeline
//
// A run is one sequential pass:
//
//  1. [Load] reads the export (delimited text or XLSX), strips a UTF-8 BOM,
//     decodes it with the configured encoding and resolves the institution
//     and attendance-mode columns from [InstitutionAliases] and
//     [AttendanceAliases].
//  2. [BuildRegistry] folds the records into a [Registry] keyed by
//     "First Last". A later row with the same key replaces the earlier one
//     entirely.
//  3. [Partition] splits the registry into In-Person and Remote buckets
//     using [Classify].
//  4. [Service.Build] hands both buckets to the report package, which sorts
//     them case-insensitively and renders the page.
//
// # Error Handling
//
// A missing input file is [ErrInputNotFound]. Bytes that the declared
// encoding cannot represent surface as [*DecodeError]. A header without a
// recognised institution or attendance column is not an error: the loader
// logs a warning and every attendee gets the default (empty institution,
// in-person). Rows without a first or last name are dropped silently.
//
// Technical errors are mapped to user-facing messages with [MapError].
package core
