package orderworks_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schartrand77/stockworks/internal/infrastructure/orderworks"
)

// newFakeOrderWorks monta un servidor que exige la cookie de sesión emitida
// por su propio login.
func newFakeOrderWorks(t *testing.T, loginCount *int32, expireFirstSession bool) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(loginCount, 1)
		http.SetCookie(w, &http.Cookie{
			Name:  "orderworks_admin_session",
			Value: "session-" + string(rune('0'+n)),
			Path:  "/",
		})
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("orderworks_admin_session")
		if err != nil || (expireFirstSession && cookie.Value == "session-1") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jobs":[{"id":"job-1","status":"queued"},{"id":"job-2","status":"printing"}]}`))
	})
	return httptest.NewServer(mux)
}

func TestClient_ListJobs(t *testing.T) {
	var logins int32
	srv := newFakeOrderWorks(t, &logins, false)
	defer srv.Close()

	client := orderworks.NewClient(srv.URL, "admin", "secreto")
	jobs, err := client.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "job-1", jobs[0]["id"])
	assert.EqualValues(t, 1, atomic.LoadInt32(&logins), "un solo login para la primera llamada")

	// Segunda llamada reutiliza la sesión vigente.
	_, err = client.ListJobs(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&logins), "la sesión no expiró, no debe re-loguear")
}

func TestClient_ListJobs_RetriesOnUnauthorized(t *testing.T) {
	var logins int32
	srv := newFakeOrderWorks(t, &logins, true)
	defer srv.Close()

	client := orderworks.NewClient(srv.URL, "admin", "secreto")
	jobs, err := client.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.EqualValues(t, 2, atomic.LoadInt32(&logins), "el 401 debe forzar un re-login y un único reintento")
}

func TestClient_NotConfigured(t *testing.T) {
	client := orderworks.NewClient("", "", "")
	assert.False(t, client.IsConfigured())

	_, err := client.ListJobs(context.Background())
	require.ErrorIs(t, err, orderworks.ErrNotConfigured)
}
