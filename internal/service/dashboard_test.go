package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	domainauth "github.com/bluemoon-pm/bluemoon-ui/internal/domain/auth"
)

func newDashboardService(t *testing.T, handler http.Handler) *DashboardService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewDashboardService(DashboardServiceOptions{
		Backend: backend.NewClient(backend.Config{BaseURL: srv.URL}),
	})
}

func sessionWithRole(role domainauth.Role, name string) *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess",
		Username:  "u",
		Role:      role,
		RoleName:  name,
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestSummaryResident(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/bills/my-bills", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"billID":1,"status":"Unpaid","total":120.5},
			{"billID":2,"status":"Paid","total":80},
			{"billID":3,"status":"Unpaid","total":30}
		]`))
	})
	mux.HandleFunc("GET /api/notification/unread-count", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":4}`))
	})

	svc := newDashboardService(t, mux)

	sum := svc.Summary(context.Background(), sessionWithRole(domainauth.RoleResident, "Resident"))
	require.NotNil(t, sum.UnpaidBills)
	assert.Equal(t, 2, *sum.UnpaidBills)
	require.NotNil(t, sum.AmountDue)
	assert.InDelta(t, 150.5, *sum.AmountDue, 0.001)
	require.NotNil(t, sum.UnreadNotifications)
	assert.Equal(t, 4, *sum.UnreadNotifications)
	assert.Nil(t, sum.Apartments)
	assert.Nil(t, sum.OutstandingBills)
}

func TestSummaryAccountant(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/apartments/get-apartments-data", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"apartmentID":"A-101"},{"apartmentID":"A-102"}]`))
	})
	mux.HandleFunc("GET /api/accounting/bills", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Unpaid", r.URL.Query().Get("status"))
		w.Write([]byte(`[{"billID":9,"status":"Unpaid"}]`))
	})
	mux.HandleFunc("GET /api/notification/unread-count", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":0}`))
	})

	svc := newDashboardService(t, mux)

	sum := svc.Summary(context.Background(), sessionWithRole(domainauth.RoleAccountant, "Accountant"))
	require.NotNil(t, sum.Apartments)
	assert.Equal(t, 2, *sum.Apartments)
	require.NotNil(t, sum.OutstandingBills)
	assert.Equal(t, 1, *sum.OutstandingBills)
	assert.Nil(t, sum.UnpaidBills)
}

func TestSummaryDegradesPerLookup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/bills/my-bills", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	mux.HandleFunc("GET /api/notification/unread-count", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":7}`))
	})

	svc := newDashboardService(t, mux)

	sum := svc.Summary(context.Background(), sessionWithRole(domainauth.RoleResident, "Resident"))
	assert.Nil(t, sum.UnpaidBills)
	assert.Nil(t, sum.AmountDue)
	require.NotNil(t, sum.UnreadNotifications)
	assert.Equal(t, 7, *sum.UnreadNotifications)
}

func TestSummaryUnknownRoleOnlyNotifications(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/notification/unread-count", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count":1}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected backend call: %s %s", r.Method, r.URL.Path)
	})

	svc := newDashboardService(t, mux)

	sum := svc.Summary(context.Background(), sessionWithRole(domainauth.RoleUnknown, "Auditor"))
	assert.Nil(t, sum.UnpaidBills)
	assert.Nil(t, sum.Apartments)
	assert.Nil(t, sum.OutstandingBills)
	require.NotNil(t, sum.UnreadNotifications)
}

func TestJMESPathEvaluatorValidate(t *testing.T) {
	var jems jmespathLibEvaluator
	require.NoError(t, jems.Validate("length(@)"))
	require.NoError(t, jems.Validate("  "))
	require.Error(t, jems.Validate("length("))
}
