package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthEndpoints(t *testing.T) {
	t.Run("Register then login", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(http.MethodPost, "/api/v1/auth/register", `{"email":"person@example.com","password":"hunter2hunter2"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = env.do(http.MethodPost, "/api/v1/auth/login", `{"email":"person@example.com","password":"hunter2hunter2"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("Duplicate registration conflicts", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(http.MethodPost, "/api/v1/auth/register", `{"email":"person@example.com","password":"hunter2hunter2"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = env.do(http.MethodPost, "/api/v1/auth/register", `{"email":"person@example.com","password":"hunter2hunter2"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Login with bad password is unauthorized", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(http.MethodPost, "/api/v1/auth/register", `{"email":"person@example.com","password":"hunter2hunter2"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = env.do(http.MethodPost, "/api/v1/auth/login", `{"email":"person@example.com","password":"wrong-password"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Short passwords are rejected at the binding", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(http.MethodPost, "/api/v1/auth/register", `{"email":"person@example.com","password":"short"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Password reset is accepted for any address", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(http.MethodPost, "/api/v1/auth/password-reset", `{"email":"nobody@example.com"}`)
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("OTP send validates the phone number", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(http.MethodPost, "/api/v1/auth/otp/send", `{"phone_number":"+15551234567"}`)
		assert.Equal(t, http.StatusAccepted, w.Code)

		w = env.do(http.MethodPost, "/api/v1/auth/otp/send", `{"phone_number":"555-1234"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("OTP confirm with a wrong code is unauthorized", func(t *testing.T) {
		env := newTestEnv(t)

		w := env.do(http.MethodPost, "/api/v1/auth/otp/send", `{"phone_number":"+15551234567"}`)
		require.Equal(t, http.StatusAccepted, w.Code)

		w = env.do(http.MethodPost, "/api/v1/auth/otp/confirm", `{"phone_number":"+15551234567","code":"000000"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
