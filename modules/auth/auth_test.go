package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RafeefAlsuhaibani/takaful-sub001/modules/auth"
	"github.com/RafeefAlsuhaibani/takaful-sub001/internal/modkit"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/apiclient"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/form"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/navigation"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/session"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/toast"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/validator"
)

type backend struct {
	mu       sync.Mutex
	logins   atomic.Int32
	register atomic.Int32
	lastBody map[string]any
}

func (b *backend) body() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastBody
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newBackend(t *testing.T) (*backend, *apiclient.Client) {
	t.Helper()
	b := &backend{}

	r := chi.NewRouter()
	r.Post(auth.LoginPath, func(w http.ResponseWriter, r *http.Request) {
		b.logins.Add(1)
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.mu.Lock()
		b.lastBody = body
		b.mu.Unlock()

		switch body["email"] {
		case "admin@takaful.sa":
			if body["password"] != "Secret#123" {
				writeJSON(w, http.StatusUnauthorized, map[string]any{"detail": "Invalid credentials"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"access":  "access-token",
				"refresh": "refresh-token",
				"user":    map[string]any{"id": "7", "email": "admin@takaful.sa", "role": "admin"},
			})
		case "notoken@takaful.sa":
			writeJSON(w, http.StatusOK, map[string]any{"refresh": "only"})
		default:
			writeJSON(w, http.StatusBadRequest, map[string]any{})
		}
	})
	r.Post(auth.RegisterPath, func(w http.ResponseWriter, r *http.Request) {
		b.register.Add(1)
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.mu.Lock()
		b.lastBody = body
		b.mu.Unlock()

		if body["email"] == "taken@takaful.sa" {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"email":       []string{"A user with this email already exists."},
				"national_id": []string{"Already registered."},
			})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": "11", "email": body["email"]})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, err := apiclient.New(srv.URL)
	require.NoError(t, err)
	return b, client
}

type fixture struct {
	backend *backend
	deps    auth.Deps
	nav     *navigation.Recorder
	sess    *session.Session
	toasts  *toast.Queue
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	b, client := newBackend(t)
	nav := &navigation.Recorder{}
	sess := session.New()
	toasts := toast.New()
	return fixture{
		backend: b,
		nav:     nav,
		sess:    sess,
		toasts:  toasts,
		deps: auth.Deps{
			Base: modkit.Base{
				API:       client,
				Navigator: nav,
				Toasts:    toasts,
			},
			Session: sess,
		},
	}
}

func TestSignIn_Success(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	c, err := auth.NewSignIn(f.deps)
	require.NoError(t, err)

	require.NoError(t, c.SetString(auth.FieldEmail, "  Admin@Takaful.SA "))
	require.NoError(t, c.SetString(auth.FieldPassword, "Secret#123"))

	resp, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "access-token", resp.Access)

	assert.Equal(t, "admin@takaful.sa", f.backend.body()["email"])
	assert.True(t, f.sess.IsAuthenticated())
	assert.True(t, f.sess.HasRole("admin"))
	assert.Equal(t, navigation.RouteDashboard, f.nav.Last())

	snap := c.Snapshot()
	assert.Equal(t, form.OutcomeSucceeded, snap.Outcome)
	assert.Empty(t, snap.Values.String(auth.FieldEmail))
	assert.Empty(t, snap.Values.String(auth.FieldPassword))
	assert.Equal(t, form.StatusIdle, snap.Status)
}

func TestSignIn_Rejected(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	c, err := auth.NewSignIn(f.deps)
	require.NoError(t, err)
	require.NoError(t, c.SetString(auth.FieldEmail, "admin@takaful.sa"))
	require.NoError(t, c.SetString(auth.FieldPassword, "Wrong#1234"))

	_, err = c.Submit(context.Background())
	require.ErrorIs(t, err, form.ErrSubmitFailed)
	assert.True(t, apiclient.IsUnauthorized(err))

	assert.Equal(t, "Invalid credentials", c.FormError())
	assert.Equal(t, "Wrong#1234", c.Values().String(auth.FieldPassword), "values kept for retry")
	assert.False(t, f.sess.IsAuthenticated())
	assert.Empty(t, f.nav.Routes())
	assert.Equal(t, form.OutcomeRejected, c.Snapshot().Outcome)
}

func TestSignIn_GenericRejection(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	c, err := auth.NewSignIn(f.deps)
	require.NoError(t, err)
	require.NoError(t, c.SetString(auth.FieldEmail, "someone@takaful.sa"))
	require.NoError(t, c.SetString(auth.FieldPassword, "whatever1"))

	_, err = c.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "submission failed, please try again", c.FormError())
}

func TestSignIn_InvalidInputSendsNothing(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	c, err := auth.NewSignIn(f.deps)
	require.NoError(t, err)
	require.NoError(t, c.SetString(auth.FieldEmail, "not-an-email"))
	require.NoError(t, c.SetString(auth.FieldPassword, "short"))

	_, err = c.Submit(context.Background())
	require.True(t, validator.IsValidationError(err))

	errs := c.Errors()
	assert.Contains(t, errs, auth.FieldEmail)
	assert.Contains(t, errs, auth.FieldPassword)
	assert.Equal(t, int32(0), f.backend.logins.Load())
}

func TestSignIn_MissingAccessToken(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	c, err := auth.NewSignIn(f.deps)
	require.NoError(t, err)
	require.NoError(t, c.SetString(auth.FieldEmail, "notoken@takaful.sa"))
	require.NoError(t, c.SetString(auth.FieldPassword, "whatever1"))

	_, err = c.Submit(context.Background())
	require.ErrorIs(t, err, session.ErrMissingAccessToken)
	assert.Equal(t, "an unexpected error occurred, please try again", c.FormError())
	assert.False(t, f.sess.IsAuthenticated())
	assert.Empty(t, f.nav.Routes())
}

func fillSignUp(t *testing.T, c *form.Controller[auth.RegisterResponse], email string) {
	t.Helper()
	require.NoError(t, c.SetString(auth.FieldFullName, " <b>Sara</b>   Alharbi "))
	require.NoError(t, c.SetString(auth.FieldEmail, email))
	require.NoError(t, c.SetString(auth.FieldPhone, "+966 50 123 4567"))
	require.NoError(t, c.SetString(auth.FieldNationalID, "١٠٢٣٤٥٦٧٨٩"))
	require.NoError(t, c.SetString(auth.FieldPassword, "Strong#Pass1"))
	require.NoError(t, c.SetString(auth.FieldPasswordConfirm, "Strong#Pass1"))
	require.NoError(t, c.SetString(auth.FieldCity, "riyadh"))
	require.NoError(t, c.SetBool(auth.FieldTerms, true))
}

func TestSignUp_Success(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	c, err := auth.NewSignUp(f.deps)
	require.NoError(t, err)
	fillSignUp(t, c, "Sara@Example.com")

	resp, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "11", resp.ID)

	body := f.backend.body()
	assert.Equal(t, "Sara Alharbi", body["full_name"])
	assert.Equal(t, "sara@example.com", body["email"])
	assert.Equal(t, "966501234567", body["phone"])
	assert.Equal(t, "1023456789", body["national_id"])
	assert.Equal(t, "riyadh", body["city"])
	assert.NotContains(t, body, auth.FieldPasswordConfirm)
	assert.NotContains(t, body, auth.FieldTerms)

	assert.Equal(t, navigation.RouteSignIn, f.nav.Last())
	active := f.toasts.Active()
	require.Len(t, active, 1)
	assert.Equal(t, toast.TypeSuccess, active[0].Type)
	assert.Equal(t, auth.MessageSignUpSuccess, active[0].Message)
	assert.False(t, f.sess.IsAuthenticated())
}

func TestSignUp_ServerFieldErrors(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	c, err := auth.NewSignUp(f.deps)
	require.NoError(t, err)
	fillSignUp(t, c, "taken@takaful.sa")

	_, err = c.Submit(context.Background())
	require.Error(t, err)

	errs := c.Errors()
	assert.Equal(t, "A user with this email already exists.", errs[auth.FieldEmail])
	assert.Equal(t, "Already registered.", errs[auth.FieldNationalID])
	assert.Equal(t, "submission failed, please try again", c.FormError())
	assert.Empty(t, f.toasts.Active())

	require.NoError(t, c.SetString(auth.FieldEmail, "new@takaful.sa"))
	assert.NotContains(t, c.Errors(), auth.FieldEmail, "editing clears the field error")
	assert.Contains(t, c.Errors(), auth.FieldNationalID)
}

func TestSignUp_Validation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	c, err := auth.NewSignUp(f.deps)
	require.NoError(t, err)
	fillSignUp(t, c, "sara@example.com")
	require.NoError(t, c.SetString(auth.FieldPhone, "0501234567"))
	require.NoError(t, c.SetString(auth.FieldNationalID, "10******89"))
	require.NoError(t, c.SetString(auth.FieldPassword, "weakpass"))
	require.NoError(t, c.SetString(auth.FieldCity, "paris"))
	require.NoError(t, c.SetBool(auth.FieldTerms, false))

	_, err = c.Submit(context.Background())
	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs)

	keys := map[string]string{}
	for _, v := range verrs {
		keys[v.Field] = v.TranslationKey
	}
	assert.Equal(t, "validation.saudi_phone", keys[auth.FieldPhone])
	assert.Equal(t, "validation.national_id", keys[auth.FieldNationalID])
	assert.Equal(t, "validation.password_uppercase", keys[auth.FieldPassword])
	assert.Equal(t, "validation.password_mismatch", keys[auth.FieldPasswordConfirm])
	assert.Equal(t, "validation.in_list", keys[auth.FieldCity])
	assert.Equal(t, "validation.accepted", keys[auth.FieldTerms])
	assert.Equal(t, int32(0), f.backend.register.Load())
}

func TestSignUp_RelaxedPolicy(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.deps.PasswordPolicy = validator.RelaxedPasswordPolicy()

	c, err := auth.NewSignUp(f.deps)
	require.NoError(t, err)
	fillSignUp(t, c, "sara@example.com")
	require.NoError(t, c.SetString(auth.FieldPassword, "Ab#12x"))
	require.NoError(t, c.SetString(auth.FieldPasswordConfirm, "Ab#12x"))

	_, err = c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), f.backend.register.Load())
}

func TestSignUp_FieldOptions(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	c, err := auth.NewSignUp(f.deps)
	require.NoError(t, err)

	phone, ok := c.Field(auth.FieldPhone)
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"dir":          "ltr",
		"autocomplete": "tel",
		"inputmode":    "numeric",
	}, phone.Input.Attributes())

	city, ok := c.Field(auth.FieldCity)
	require.True(t, ok)
	assert.True(t, city.HasChoice("jeddah"))
}
