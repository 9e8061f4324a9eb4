// Package auth provides the sign-in and sign-up forms.
//
// Sign-in posts to /api/auth/login/, stores the returned tokens in the
// session and navigates to the dashboard. Sign-up posts to
// /api/auth/register/, shows a success toast and navigates to sign-in.
// Both build on form.Controller, so validation, double-submit protection
// and error mapping behave the same as every other form.
package auth
