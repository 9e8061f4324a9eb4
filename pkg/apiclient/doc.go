// Package apiclient is the JSON REST collaborator used by the forms.
//
// A Client sends one request per call with a JSON body, an Accept-Language
// header taken from the request context (or the client default), an
// X-Request-ID correlation header and, when a TokenSource yields one, a
// bearer token. It does not retry.
//
// Outcomes map onto three error shapes:
//
//   - nil for 2xx; the body is decoded into out when present.
//   - *APIError for any other status, carrying the server "detail" message
//     and DRF-style field errors. It satisfies form.Rejection.
//   - errors wrapping ErrTransport (and ErrTimeout on deadline) when no
//     response arrived.
//
//	client, err := apiclient.New(cfg.APIURL, apiclient.WithTokenSource(sess))
//	var out LoginResponse
//	err = client.PostJSON(ctx, "/api/auth/login/", payload, &out)
package apiclient
