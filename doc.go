// Package takaful is the headless core of the Takaful volunteer platform
// client. It wires configuration, logging, translations, the REST client,
// the session and the toast queue into one explicit App value and builds the
// platform's forms and home-page stats from it.
//
// Basic usage:
//
//	cfg, err := takaful.LoadConfig(config.WithOptionalEnvFiles(".env"))
//	if err != nil {
//		return err
//	}
//	app, err := takaful.New(ctx, cfg, takaful.WithNavigator(shell))
//	if err != nil {
//		return err
//	}
//
//	signIn, err := app.SignIn()
//	if err != nil {
//		return err
//	}
//	defer signIn.Close()
//	_ = signIn.SetString(auth.FieldEmail, email)
//	_ = signIn.SetString(auth.FieldPassword, password)
//	if _, err := signIn.Submit(app.Context(ctx)); err != nil {
//		// field errors and the form-level message are on signIn.Snapshot()
//	}
//
// # Configuration
//
// Config is read from the environment by [LoadConfig]:
//
//	TAKAFUL_API_URL           backend base URL (required)
//	TAKAFUL_API_TIMEOUT       per-request timeout, default 15s
//	TAKAFUL_LANG              UI language, default ar
//	TAKAFUL_PASSWORD_POLICY   strict (default) or relaxed
//	TAKAFUL_COUNTUP_DURATION  stats animation length, default 1200ms
//	TAKAFUL_TOAST_TTL         toast lifetime, default 4s
//	APP_ENV, APP_NAME, LOG_LEVEL
//
// The strict password policy is canonical; relaxed only applies when set
// explicitly.
package takaful
