// Package site is the data model of a documentation site's navigation
// configuration: metadata, top navigation, sidebars keyed by path prefix,
// social links, search, theme labels, footer, outline and last-updated
// options.
//
// Every record has unexported fields and is created through a validating
// constructor, so a malformed configuration cannot be represented. Once a
// Configuration has been built it is never mutated; accessors hand out
// copies, which makes a built value safe for concurrent readers.
//
// Configurations are assembled either with a Builder or by decoding a YAML
// document (see Parse). Both paths run the same constructors and fail with a
// classified validation error that names the offending field and the
// expected shape.
package site
