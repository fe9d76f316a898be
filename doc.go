// Package aisyntax ingests, validates and normalizes GS1 Application
// Identifier (AI) element data ahead of barcode symbol encoding.
//
// GS1 AI data reaches an encoder in several textual shapes. A label
// operator types human-readable bracketed syntax:
//
//	(01)12345678901231(10)ABC123(11)210630
//
// A scanner emits raw element strings in which a non-printable FNC1
// character separates fields whose length is not fixed by their
// definition; this package follows the GS1 convention of rendering
// FNC1 as "#":
//
//	#0112345678901231#10ABC123
//
// And a GS1 Digital Link URI carries the same data as URL path
// segments and query parameters:
//
//	https://id.gs1.org/01/09520123456788/10/ABC123?17=250630
//
// All three forms funnel into one canonical representation: a single
// byte buffer in unbracketed "#..." form, validated end to end against
// the AI registry (character classes, component length bounds, check
// digits, FNC1 termination rules), plus a table of extracted elements
// that reference the canonical buffer without copying value bytes.
// Downstream symbol encoders consume the canonical buffer and the
// element table directly.
//
// The Digital Link conversion is lossy by specification: the URI stem
// is discarded, and AI values may be normalized (a GTIN-8, GTIN-12 or
// GTIN-13 in the path is zero-padded to a full GTIN-14). There is no
// way, and no need, to reconstruct the original URI from the canonical
// form.
//
// A Parser instance owns all mutable state for one parse at a time.
// Parsers are cheap; create one per goroutine rather than sharing.
//
// The AI registry here follows the GS1 General Specifications element
// string definitions:
//   - https://www.gs1.org/sites/default/files/docs/barcodes/GS1_General_Specifications.pdf
//   - https://www.gs1.org/standards/gs1-digital-link
package aisyntax
