package handler

import (
	"net/http"
	"testing"

	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	mockUsecase "agrox/internal/mocks/usecase"
	"agrox/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockSessionUsecase) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)

	return NewAuthHandler(AuthHandlerParams{SessionUC: sessionUC, Logger: newDiscardLogger()}), sessionUC
}

func TestAuthHandler_RegisterHidesPassword(t *testing.T) {
	h, sessionUC := newAuthHandler(t)
	e := newTestEcho()
	sess := newTestSession("fay@farm.test", entity.RoleFarmer)

	sessionUC.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
			return in.Email == "fay@farm.test" && in.Role == "farmer" && in.AcceptTerms
		})).
		Return(sess, nil).
		Once()

	body := `{"firstName":"Fay","lastName":"Farmer","email":"fay@farm.test","role":"farmer",` +
		`"password":"Secret123","confirmPassword":"Secret123","acceptTerms":true}`
	c, rec := newContext(e, http.MethodPost, "/auth/register", body, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"fay@farm.test"`)
	assert.NotContains(t, rec.Body.String(), "Secret123")
}

func TestAuthHandler_RegisterValidationDetails(t *testing.T) {
	h, sessionUC := newAuthHandler(t)
	e := newTestEcho()

	sessionUC.EXPECT().
		Register(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewValidationError([]string{"Passwords do not match"})).
		Once()

	c, rec := newContext(e, http.MethodPost, "/auth/register", `{"email":"fay@farm.test"}`, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, []string{"Passwords do not match"}, env.Error.Details)
}

func TestAuthHandler_RegisterMalformedBody(t *testing.T) {
	h, _ := newAuthHandler(t)
	e := newTestEcho()
	c, rec := newContext(e, http.MethodPost, "/auth/register", `{"email":`, nil)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, rec).Error.Code)
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	h, sessionUC := newAuthHandler(t)
	e := newTestEcho()

	sessionUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "fay@farm.test", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials).
		Once()

	c, rec := newContext(e, http.MethodPost, "/auth/login", `{"email":"fay@farm.test","password":"wrong"}`, nil)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestAuthHandler_SessionNotLoggedIn(t *testing.T) {
	h, sessionUC := newAuthHandler(t)
	e := newTestEcho()

	sessionUC.EXPECT().Current(mock.Anything).Return(nil, domainerrors.ErrNotLoggedIn).Once()

	c, rec := newContext(e, http.MethodGet, "/auth/session", "", nil)

	require.NoError(t, h.Session(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "NOT_LOGGED_IN", decodeEnvelope(t, rec).Error.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	h, sessionUC := newAuthHandler(t)
	e := newTestEcho()

	sessionUC.EXPECT().Logout(mock.Anything).Return(nil).Once()

	c, rec := newContext(e, http.MethodPost, "/auth/logout", "", nil)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_PasswordStrength(t *testing.T) {
	h, sessionUC := newAuthHandler(t)
	e := newTestEcho()

	sessionUC.EXPECT().
		PasswordStrength("Secret12").
		Return(usecase.PasswordStrength{Score: 75, Label: "Strong"}).
		Once()

	c, rec := newContext(e, http.MethodPost, "/auth/password-strength", `{"password":"Secret12"}`, nil)

	require.NoError(t, h.PasswordStrength(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"score":75,"label":"Strong"}`, string(decodeEnvelope(t, rec).Data))
}
