package httpx

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// summaryBackend serves the handful of read endpoints the dashboard summary
// projects over.
func summaryBackend() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/notification/unread-count", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"count":3}`)
	})
	mux.HandleFunc("GET /api/bills/my-bills", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `[
			{"billID":1,"status":"Unpaid","total":100.5},
			{"billID":2,"status":"Paid","total":40},
			{"billID":3,"status":"Unpaid","total":50}
		]`)
	})
	mux.HandleFunc("GET /api/apartments/get-apartments-data", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `[{"apartmentID":"A101"},{"apartmentID":"A102"},{"apartmentID":"B201"}]`)
	})
	mux.HandleFunc("GET /api/accounting/bills", func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `[{"billID":1},{"billID":3}]`)
	})
	return mux
}

type dashboardReply struct {
	Screen  string `json:"screen"`
	Session *struct {
		Username  string `json:"username"`
		Role      string `json:"role"`
		Supported bool   `json:"supported"`
	} `json:"session"`
	Summary *struct {
		UnpaidBills         *int     `json:"unpaidBills"`
		AmountDue           *float64 `json:"amountDue"`
		Apartments          *int     `json:"apartments"`
		OutstandingBills    *int     `json:"outstandingBills"`
		UnreadNotifications *int     `json:"unreadNotifications"`
	} `json:"summary"`
}

func decodeDashboard(t *testing.T, body []byte) dashboardReply {
	t.Helper()
	var resp dashboardReply
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestDashboard_AnonymousGetsLoginScreen(t *testing.T) {
	env := newTestEnv(t, summaryBackend())

	w := env.get("/api/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeDashboard(t, w.Body.Bytes())
	assert.Equal(t, ScreenLogin, resp.Screen)
	assert.Nil(t, resp.Session)
	assert.Nil(t, resp.Summary)
}

func TestDashboard_ResidentScreenAndSummary(t *testing.T) {
	env := newTestEnv(t, summaryBackend())

	w := env.get("/api/dashboard", "sess-resident")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeDashboard(t, w.Body.Bytes())
	assert.Equal(t, ScreenResident, resp.Screen)
	require.NotNil(t, resp.Session)
	assert.Equal(t, "rita", resp.Session.Username)
	assert.True(t, resp.Session.Supported)

	require.NotNil(t, resp.Summary)
	require.NotNil(t, resp.Summary.UnpaidBills)
	assert.Equal(t, 2, *resp.Summary.UnpaidBills)
	require.NotNil(t, resp.Summary.AmountDue)
	assert.InDelta(t, 150.5, *resp.Summary.AmountDue, 0.001)
	require.NotNil(t, resp.Summary.UnreadNotifications)
	assert.Equal(t, 3, *resp.Summary.UnreadNotifications)
	assert.Nil(t, resp.Summary.Apartments)
}

func TestDashboard_ManagerScreenAndSummary(t *testing.T) {
	env := newTestEnv(t, summaryBackend())

	w := env.get("/api/dashboard", "sess-manager")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeDashboard(t, w.Body.Bytes())
	assert.Equal(t, ScreenStaff, resp.Screen)

	require.NotNil(t, resp.Summary)
	require.NotNil(t, resp.Summary.Apartments)
	assert.Equal(t, 3, *resp.Summary.Apartments)
	// Managers do not handle payments, so no outstanding-bills figure.
	assert.Nil(t, resp.Summary.OutstandingBills)
	assert.Nil(t, resp.Summary.UnpaidBills)
}

func TestDashboard_AccountantSeesOutstandingBills(t *testing.T) {
	env := newTestEnv(t, summaryBackend())

	w := env.get("/api/dashboard", "sess-accountant")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeDashboard(t, w.Body.Bytes())
	assert.Equal(t, ScreenStaff, resp.Screen)
	require.NotNil(t, resp.Summary)
	require.NotNil(t, resp.Summary.OutstandingBills)
	assert.Equal(t, 2, *resp.Summary.OutstandingBills)
}

func TestDashboard_UnknownRoleGetsNoSummary(t *testing.T) {
	env := newTestEnv(t, summaryBackend())

	w := env.get("/api/dashboard", "sess-auditor")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeDashboard(t, w.Body.Bytes())
	assert.Equal(t, ScreenUnsupportedRole, resp.Screen)
	require.NotNil(t, resp.Session)
	assert.Equal(t, "Auditor", resp.Session.Role)
	assert.False(t, resp.Session.Supported)
	assert.Nil(t, resp.Summary)
}

func TestDashboard_SummaryDegradesWhenBackendDown(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.get("/api/dashboard", "sess-resident")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeDashboard(t, w.Body.Bytes())
	assert.Equal(t, ScreenResident, resp.Screen)
	require.NotNil(t, resp.Summary)
	assert.Nil(t, resp.Summary.UnpaidBills)
	assert.Nil(t, resp.Summary.UnreadNotifications)
}

func TestDashboardSummary_Standalone(t *testing.T) {
	env := newTestEnv(t, summaryBackend())

	t.Run("unauthenticated", func(t *testing.T) {
		w := env.get("/api/dashboard/summary", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "authentication_required", errCode(t, w))
	})

	t.Run("resident counters", func(t *testing.T) {
		w := env.get("/api/dashboard/summary", "sess-resident")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			UnpaidBills *int     `json:"unpaidBills"`
			AmountDue   *float64 `json:"amountDue"`
			Apartments  *int     `json:"apartments"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.UnpaidBills)
		assert.Equal(t, 2, *resp.UnpaidBills)
		require.NotNil(t, resp.AmountDue)
		assert.InDelta(t, 150.5, *resp.AmountDue, 0.001)
		assert.Nil(t, resp.Apartments)
	})

	t.Run("unknown role denied", func(t *testing.T) {
		w := env.get("/api/dashboard/summary", "sess-auditor")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "access_denied", errCode(t, w))
	})
}

func TestNav_PerRoleMenus(t *testing.T) {
	env := newTestEnv(t, nil)

	menuIDs := func(t *testing.T, body []byte) []string {
		t.Helper()
		var resp struct {
			Items []struct {
				ID string `json:"id"`
			} `json:"items"`
		}
		require.NoError(t, json.Unmarshal(body, &resp))
		ids := make([]string, 0, len(resp.Items))
		for _, it := range resp.Items {
			ids = append(ids, it.ID)
		}
		return ids
	}

	t.Run("unauthenticated", func(t *testing.T) {
		w := env.get("/api/nav", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("direct call without session", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/nav", nil)
		(&NavHandlers{}).Menu(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "authentication_required", errCode(t, w))
	})

	t.Run("resident", func(t *testing.T) {
		w := env.get("/api/nav", "sess-resident")
		require.Equal(t, http.StatusOK, w.Code)
		ids := menuIDs(t, w.Body.Bytes())
		assert.Equal(t, []string{"dashboard", "bills", "payments"}, ids)
	})

	t.Run("manager", func(t *testing.T) {
		w := env.get("/api/nav", "sess-manager")
		require.Equal(t, http.StatusOK, w.Code)
		ids := menuIDs(t, w.Body.Bytes())
		assert.Contains(t, ids, "residents")
		assert.Contains(t, ids, "building-managers")
		assert.NotContains(t, ids, "bills")
	})

	t.Run("unknown role sees empty menu", func(t *testing.T) {
		w := env.get("/api/nav", "sess-auditor")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"items":[]}`, w.Body.String())
	})
}
