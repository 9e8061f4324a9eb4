// Package requestid tags outbound API calls with a correlation identifier.
//
// Each form submission runs under a context carrying an ID (Ensure creates
// one when missing). Apply copies it into the X-Request-ID header and
// LoggerExtractor adds it to every log record written with that context, so
// client logs can be matched with server logs.
package requestid
