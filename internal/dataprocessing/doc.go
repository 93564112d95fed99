// Package dataprocessing converts GPIRS shortage report text into
// normalized shortage records.
//
// # Architecture
//
// The package is organized around four components:
//
//  1. Decoder: turns raw report bytes into text (UTF-8 BOM, UTF-8, Latin-1)
//  2. Metadata extractor: shipping document number and received date
//  3. Parser: the two-line sliding scan that pairs header and detail lines
//  4. Assembler: numeric coercion and multi-document merging
//
// # Data Flow
//
// The typical flow through this package:
//
//	Report bytes → DecodeDocument → ExtractMetadata → ParseDocument → records → Merge
//
// # Error Handling
//
// Only decoding can fail. Everything downstream degrades instead of
// erroring: missing metadata falls back (empty identifier, today's date),
// unpairable lines are skipped one at a time, and unparseable numeric
// tokens become null values on records that are still emitted.
package dataprocessing
