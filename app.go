package takaful

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/RafeefAlsuhaibani/takaful-sub001/locales"
	"github.com/RafeefAlsuhaibani/takaful-sub001/modules/auth"
	"github.com/RafeefAlsuhaibani/takaful-sub001/internal/modkit"
	"github.com/RafeefAlsuhaibani/takaful-sub001/modules/project"
	"github.com/RafeefAlsuhaibani/takaful-sub001/modules/stats"
	"github.com/RafeefAlsuhaibani/takaful-sub001/modules/suggestion"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/apiclient"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/countup"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/environment"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/form"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/i18n"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/logger"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/navigation"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/requestid"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/session"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/toast"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/validator"
)

// Option configures an App.
type Option func(*App)

// WithNavigator sets the shell's navigator. Without one, navigation is only
// logged.
func WithNavigator(n navigation.Navigator) Option {
	return func(a *App) {
		if n != nil {
			a.navigator = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(a *App) {
		if hc != nil {
			a.httpClient = hc
		}
	}
}

// WithTranslations replaces the embedded catalogs.
func WithTranslations(adapter i18n.TranslationAdapter) Option {
	return func(a *App) {
		if adapter != nil {
			a.translations = adapter
		}
	}
}

// App is the explicit application context. It is built once at start-up and
// handed to every screen; nothing in it is a package-level singleton.
type App struct {
	cfg          Config
	env          environment.Environment
	policy       validator.PasswordPolicy
	logger       *slog.Logger
	httpClient   *http.Client
	translations i18n.TranslationAdapter
	translator   *i18n.Translator
	api          *apiclient.Client
	session      *session.Session
	toasts       *toast.Queue
	navigator    navigation.Navigator

	mu   sync.RWMutex
	lang string
}

// New builds the application context from cfg.
func New(ctx context.Context, cfg Config, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, _ := validator.PasswordPolicyByName(cfg.PasswordPolicy)

	a := &App{
		cfg:    cfg,
		env:    environment.Parse(cfg.Env),
		policy: policy,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = logger.New(
			logger.WithEnvironment(cfg.Env, cfg.Service),
			logger.WithLevelName(cfg.LogLevel),
			logger.WithContextExtractors(requestid.LoggerExtractor()),
		)
	}
	if a.translations == nil {
		a.translations = i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, ".")
	}
	if a.navigator == nil {
		a.navigator = navigation.NavigatorFunc(func(ctx context.Context, route navigation.Route) error {
			if route == "" {
				return navigation.ErrEmptyRoute
			}
			a.logger.InfoContext(ctx, "navigate", logger.Route(string(route)))
			return nil
		})
	}

	tr, err := i18n.NewTranslator(ctx, a.translations,
		i18n.WithDefaultLanguage(i18n.DefaultLanguage),
		i18n.WithLogger(a.logger),
		i18n.WithMissingTranslationsLogging(!a.env.IsProduction()),
	)
	if err != nil {
		return nil, errors.Join(ErrLoadingLocales, err)
	}
	a.translator = tr
	a.lang = tr.Match(cfg.Language)

	a.session = session.New(func(authenticated bool) {
		a.logger.Info("session changed", slog.Bool("authenticated", authenticated))
	})
	a.toasts = toast.New(toast.WithTTL(cfg.ToastTTL))

	clientOpts := []apiclient.Option{
		apiclient.WithTimeout(cfg.APITimeout),
		apiclient.WithTokenSource(a.session),
		apiclient.WithLanguageFunc(a.Language),
		apiclient.WithLogger(a.logger.With(logger.Component("apiclient"))),
	}
	if a.httpClient != nil {
		clientOpts = append(clientOpts, apiclient.WithHTTPClient(a.httpClient))
	}
	a.api, err = apiclient.New(cfg.APIURL, clientOpts...)
	if err != nil {
		return nil, errors.Join(ErrCreatingAPIClient, err)
	}

	a.logger.DebugContext(ctx, "app initialized",
		slog.String("lang", a.lang),
		slog.String("password_policy", cfg.PasswordPolicy),
	)
	return a, nil
}

func (a *App) Config() Config                       { return a.cfg }
func (a *App) Environment() environment.Environment { return a.env }
func (a *App) Logger() *slog.Logger                 { return a.logger }
func (a *App) Translator() *i18n.Translator         { return a.translator }
func (a *App) API() *apiclient.Client               { return a.api }
func (a *App) Session() *session.Session            { return a.session }
func (a *App) Toasts() *toast.Queue                 { return a.toasts }
func (a *App) Navigator() navigation.Navigator      { return a.navigator }

// Language returns the active UI language.
func (a *App) Language() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lang
}

// Direction returns the text direction of the active language.
func (a *App) Direction() i18n.Direction {
	return i18n.DirectionOf(a.Language())
}

// SetLanguage switches the UI language to the best supported match of
// preferred and returns it. Forms created afterwards use the new language.
func (a *App) SetLanguage(preferred ...string) string {
	lang := a.translator.Match(preferred...)
	a.mu.Lock()
	a.lang = lang
	a.mu.Unlock()
	return lang
}

// Localizer returns a localizer for the active language.
func (a *App) Localizer() Localizer {
	return NewLocalizer(a.translator, a.Language())
}

// Context attaches the app, its session, environment and language to ctx.
// Outbound calls made with the result carry the language and a request ID.
func (a *App) Context(ctx context.Context) context.Context {
	ctx = WithApp(ctx, a)
	ctx = session.WithSession(ctx, a.session)
	ctx = environment.WithContext(ctx, a.env)
	ctx = i18n.SetLocale(ctx, a.Language())
	ctx, _ = requestid.Ensure(ctx)
	return ctx
}

func (a *App) base() modkit.Base {
	return modkit.Base{
		API:       a.api,
		Navigator: a.navigator,
		Toasts:    a.toasts,
		Localizer: a.Localizer(),
		Logger:    a.logger,
	}
}

// SignIn creates the sign-in form.
func (a *App) SignIn(opts ...form.Option) (*form.Controller[auth.LoginResponse], error) {
	return auth.NewSignIn(a.authDeps(), opts...)
}

// SignUp creates the registration form with the configured password policy.
func (a *App) SignUp(opts ...form.Option) (*form.Controller[auth.RegisterResponse], error) {
	return auth.NewSignUp(a.authDeps(), opts...)
}

func (a *App) authDeps() auth.Deps {
	return auth.Deps{Base: a.base(), Session: a.session, PasswordPolicy: a.policy}
}

// Suggestion creates the suggestion form.
func (a *App) Suggestion(opts ...form.Option) (*form.Controller[suggestion.Response], error) {
	return suggestion.New(suggestion.Deps{Base: a.base()}, opts...)
}

// AddProject creates the add-project form. It requires a signed-in session.
func (a *App) AddProject(opts ...form.Option) (*form.Controller[project.Response], error) {
	if err := a.session.RequireAuth(); err != nil {
		return nil, err
	}
	return project.New(project.Deps{Base: a.base()}, opts...)
}

// HomeStats fetches the public stats and builds their count-up board.
func (a *App) HomeStats(ctx context.Context, opts ...stats.BoardOption) (*stats.Board, error) {
	base := []stats.BoardOption{
		stats.WithLanguage(a.Language()),
		stats.WithLabeler(a.Localizer()),
		stats.WithCounterOptions(countup.WithDuration(a.cfg.CountUpDuration)),
		stats.WithLogger(a.logger.With(logger.Component("stats"))),
	}
	board, err := stats.Load(a.Context(ctx), a.api, append(base, opts...)...)
	if err != nil {
		a.logger.WarnContext(ctx, "home stats unavailable", logger.Endpoint(stats.Path), logger.Error(err))
		return nil, err
	}
	return board, nil
}

// SignOut forgets the session and returns to the home screen.
func (a *App) SignOut(ctx context.Context) error {
	a.session.SignOut()
	if err := a.navigator.Navigate(ctx, navigation.RouteHome); err != nil {
		return fmt.Errorf("navigating home: %w", err)
	}
	return nil
}
