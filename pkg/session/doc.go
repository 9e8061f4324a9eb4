// Package session holds the client's authentication context: the token pair
// from the login endpoint and the signed-in user.
//
// A Session is created once per app and passed explicitly to the forms that
// need it. It implements apiclient.TokenSource so the REST client can attach
// the bearer token. Listeners observe sign-in and sign-out.
package session
