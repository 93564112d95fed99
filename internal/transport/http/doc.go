// Package http provides the HTTP transport layer for the shortage
// report converter.
//
// Handlers are thin: they decode multipart uploads into service
// inputs, delegate to the conversion service, and render either a
// JSON summary or the generated workbook. All error responses go
// through the shared RFC 7807 error handler.
package http
