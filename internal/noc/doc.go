// Package noc maps committee names to three-letter committee codes and committee
// codes to two-letter geographic codes used for flag images.
//
// Lookups go through immutable tables: a hand-authored set of built-in overrides,
// optionally overlaid with a Mapping loaded from the generated mapping files. A
// Resolver is built once per run and shared read-only by the row extractor.
package noc
