package httpx

import (
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingBackend records how many requests reached it and answers every
// request with the configured status and body.
type countingBackend struct {
	hits   atomic.Int32
	status int
	body   string
}

func (b *countingBackend) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	b.hits.Add(1)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(b.status)
	io.WriteString(w, b.body)
}

func TestProxy_DeniedRolesNeverReachBackend(t *testing.T) {
	be := &countingBackend{status: http.StatusOK, body: `[]`}
	env := newTestEnv(t, be)

	cases := []struct {
		name    string
		method  string
		path    string
		session string
	}{
		{"resident lists residents", http.MethodGet, "/api/residents", "sess-resident"},
		{"resident lists accounts", http.MethodGet, "/api/accounts/rita", "sess-resident"},
		{"resident broadcasts", http.MethodPost, "/api/notifications/broadcast", "sess-resident"},
		{"accountant manages residents", http.MethodGet, "/api/residents", "sess-accountant"},
		{"manager views my-bills", http.MethodGet, "/api/bills/my-bills", "sess-manager"},
		{"manager records offline payment", http.MethodPost, "/api/offline-payments", "sess-manager"},
		{"unknown role views apartments", http.MethodGet, "/api/apartments", "sess-auditor"},
		{"unknown role views my-bills", http.MethodGet, "/api/bills/my-bills", "sess-auditor"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.do(tc.method, tc.path, tc.session, "")
			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.Equal(t, "access_denied", errCode(t, w))
		})
	}

	assert.Equal(t, int32(0), be.hits.Load(), "denied requests must not be proxied")
}

func TestProxy_UnauthenticatedGets401(t *testing.T) {
	be := &countingBackend{status: http.StatusOK, body: `[]`}
	env := newTestEnv(t, be)

	for _, path := range []string{
		"/api/residents",
		"/api/bills/my-bills",
		"/api/notifications",
		"/api/building-managers",
	} {
		w := env.get(path, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Equal(t, "authentication_required", errCode(t, w), path)
	}
	assert.Equal(t, int32(0), be.hits.Load())
}

func TestProxy_ResidentReadsOwnBills(t *testing.T) {
	be := &countingBackend{status: http.StatusOK, body: `[{"billID":7,"status":"Unpaid","total":99}]`}
	env := newTestEnv(t, be)

	w := env.get("/api/bills/my-bills", "sess-resident")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"billID":7`)
	assert.Equal(t, int32(1), be.hits.Load())
}

func TestProxy_EmptyBackendListNormalizesToEmptyArray(t *testing.T) {
	be := &countingBackend{status: http.StatusOK, body: `null`}
	env := newTestEnv(t, be)

	w := env.get("/api/bills/my-bills", "sess-resident")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestProxy_BackendRejectionPassesThrough(t *testing.T) {
	be := &countingBackend{status: http.StatusConflict, body: `{"detail":"bill already paid"}`}
	env := newTestEnv(t, be)

	w := env.do(http.MethodPost, "/api/payments/qr", "sess-resident", `{"bill_ids":[7]}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "backend_error", errCode(t, w))
	assert.Contains(t, w.Body.String(), "bill already paid")
}

func TestProxy_BackendUnreachableIs502(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.get("/api/bills/my-bills", "sess-resident")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "backend_unreachable", errCode(t, w))
}

func TestProxy_QRPaymentRequiresBillIDs(t *testing.T) {
	be := &countingBackend{status: http.StatusCreated, body: `{}`}
	env := newTestEnv(t, be)

	w := env.do(http.MethodPost, "/api/payments/qr", "sess-resident", `{"bill_ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", errCode(t, w))
	assert.Equal(t, int32(0), be.hits.Load())
}

func TestProxy_AccountantAccountingWorkflow(t *testing.T) {
	be := &countingBackend{status: http.StatusCreated, body: `{"billsCreated":12,"totalAmount":5400}`}
	env := newTestEnv(t, be)

	w := env.do(http.MethodPost, "/api/accounting/bills/calculate", "sess-accountant",
		`{"month":"2025-06","deadline_day":15}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"billsCreated":12`)
}

func TestProxy_ManagerBroadcast(t *testing.T) {
	be := &countingBackend{status: http.StatusCreated, body: `{"message":"sent to 40 accounts"}`}
	env := newTestEnv(t, be)

	t.Run("rejects empty message", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/notifications/broadcast", "sess-manager", `{"title":"Water outage"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("forwards valid broadcast", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/notifications/broadcast", "sess-manager",
			`{"title":"Water outage","message":"Tomorrow 9-12"}`)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func TestProxy_NotificationsNeedOnlyASession(t *testing.T) {
	be := &countingBackend{status: http.StatusOK, body: `[]`}
	env := newTestEnv(t, be)

	// Every seeded role, the unknown one included, can read its own
	// notifications.
	for _, sess := range []string{"sess-resident", "sess-accountant", "sess-manager", "sess-admin", "sess-auditor"} {
		w := env.get("/api/notifications", sess)
		assert.Equal(t, http.StatusOK, w.Code, sess)
	}
}

func TestProxy_StaffCRUDRouting(t *testing.T) {
	be := &countingBackend{status: http.StatusOK, body: `[]`}
	env := newTestEnv(t, be)

	t.Run("manager lists accountants", func(t *testing.T) {
		w := env.get("/api/accountants", "sess-manager")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("accountant cannot list accountants", func(t *testing.T) {
		w := env.get("/api/accountants", "sess-accountant")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("non-numeric id is 400", func(t *testing.T) {
		w := env.get("/api/accountants/abc", "sess-manager")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_path", errCode(t, w))
	})
}

func TestProxy_ResidentDetailRequiresQueryParams(t *testing.T) {
	be := &countingBackend{status: http.StatusOK, body: `{}`}
	env := newTestEnv(t, be)

	w := env.get("/api/residents/detail?fullname=Jan+Kowalski", "sess-manager")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int32(0), be.hits.Load())

	w = env.get("/api/residents/detail?fullname=Jan+Kowalski&apartment_id=A101", "sess-manager")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProxy_QRCheckPassthroughBody(t *testing.T) {
	be := &countingBackend{status: http.StatusOK, body: `{"status":"expired","newQR":{"qrCodeUrl":"https://pay/2"}}`}
	env := newTestEnv(t, be)

	w := env.do(http.MethodPost, "/api/payments/qr/check", "sess-resident", `{"paymentRef":"PR-1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"expired","newQR":{"qrCodeUrl":"https://pay/2"}}`, w.Body.String())
}
