// Package suggestion provides the form that sends an improvement or project
// suggestion to the administrators.
//
// The description accepts a small set of inline formatting tags; everything
// else is stripped before validation. The contact email is optional and only
// validated when present. Submission requires a signed-in session: the
// request carries the bearer token from the API client's token source.
package suggestion
