package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/homework-evaluation/backend/ent/account"
	"github.com/homework-evaluation/backend/internal/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExporterMux(t *testing.T) {
	client := testhelper.NewEntSqliteClient(t)
	testhelper.CreateAccount(t, client, account.RoleStudent, "s1")

	mux := ExporterMux(client, PrometheusMetrics(client))

	t.Run("healthz", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `hwe_accounts_total{role="student"} 1`)
		assert.Contains(t, rec.Body.String(), `hwe_submissions_total{state="pending"} 0`)
	})
}
