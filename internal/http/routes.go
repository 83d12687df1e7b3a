package httpx

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	"github.com/bluemoon-pm/bluemoon-ui/internal/domain/perm"
	"github.com/bluemoon-pm/bluemoon-ui/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         *service.AuthService
	Backend      *backend.Client
	Summaries    *service.DashboardService
	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router for the gateway.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	dashboardHandlers := &DashboardHandlers{Summaries: services.Summaries}

	registerAuthRoutes(mux, authHandlers)
	registerShellRoutes(mux, dashboardHandlers, services.Auth)
	registerAccountRoutes(mux, &AccountHandlers{Backend: services.Backend}, services.Auth)
	registerApartmentRoutes(mux, &ApartmentHandlers{Backend: services.Backend}, services.Auth)
	registerResidentRoutes(mux, &ResidentHandlers{Backend: services.Backend}, services.Auth)
	registerStaffRoutes(mux, services)
	registerBuildingRoutes(mux, &BuildingHandlers{Backend: services.Backend}, services.Auth)
	registerBillRoutes(mux, &BillHandlers{Backend: services.Backend}, services.Auth)
	registerPaymentRoutes(mux, &PaymentHandlers{Backend: services.Backend}, services.Auth)
	registerReceiptRoutes(mux, &ReceiptHandlers{Backend: services.Backend}, services.Auth)
	registerNotificationRoutes(mux, &NotificationHandlers{Backend: services.Backend}, services.Auth)
	registerAccountingRoutes(mux, &AccountingHandlers{Backend: services.Backend}, services.Auth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	var handler http.Handler = &notFoundHandler{mux: mux, logger: services.Logger}
	if services.Logger != nil {
		handler = Recover(services.Logger)(handler)
		handler = Logging(services.Logger)(handler)
	}
	return handler
}

// notFoundHandler wraps a ServeMux and turns its plain-text 404s into the
// gateway's JSON error envelope.
type notFoundHandler struct {
	mux    *http.ServeMux
	logger *slog.Logger
}

func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cw := newCaptureWriter(w)
	h.mux.ServeHTTP(cw, r)

	if cw.status == http.StatusNotFound {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "not_found",
			Err:     errors.New("no such endpoint"),
		})
		return
	}

	cw.flushTo(w, h.logger)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	rw     http.ResponseWriter
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{rw: w, header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter, logger *slog.Logger) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil && logger != nil {
		logger.Warn("failed to write captured response", slog.Any("error", err))
	}
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("GET /api/auth/me", h.Me)
	mux.HandleFunc("POST /api/auth/logout", h.Logout)
}

// registerShellRoutes wires the screen selector and the sidebar menu. The
// dashboard is reachable without a session (it answers "login"), the menu
// is not.
func registerShellRoutes(mux *http.ServeMux, h *DashboardHandlers, auth *service.AuthService) {
	dashboard := http.HandlerFunc(h.Resolve)
	if auth != nil {
		mux.Handle("GET /api/dashboard", OptionalAuth(auth)(dashboard))
	} else {
		mux.Handle("GET /api/dashboard", dashboard)
	}
	mux.Handle("GET /api/dashboard/summary", authWrap(auth)(http.HandlerFunc(h.Summary)))
	mux.Handle("GET /api/nav", authWrap(auth)(http.HandlerFunc((&NavHandlers{}).Menu)))
}

func registerAccountRoutes(mux *http.ServeMux, h *AccountHandlers, auth *service.AuthService) {
	wrap := capWrap(auth, perm.CanManageAccounts)
	mux.Handle("POST /api/accounts", wrap(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/accounts/{username}", wrap(http.HandlerFunc(h.Get)))
	mux.Handle("DELETE /api/accounts/{username}", wrap(http.HandlerFunc(h.Delete)))
	mux.Handle("PATCH /api/accounts/{username}/role", wrap(http.HandlerFunc(h.UpdateRole)))
	mux.Handle("PATCH /api/accounts/{username}/password", wrap(http.HandlerFunc(h.UpdatePassword)))
}

func registerApartmentRoutes(mux *http.ServeMux, h *ApartmentHandlers, auth *service.AuthService) {
	view := capWrap(auth, perm.CanViewApartments)
	manage := capWrap(auth, perm.CanManageBuildings)
	mux.Handle("GET /api/apartments", view(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/apartments", manage(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/apartments/{id}", manage(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/apartments/{id}", manage(http.HandlerFunc(h.Delete)))
}

func registerResidentRoutes(mux *http.ServeMux, h *ResidentHandlers, auth *service.AuthService) {
	wrap := capWrap(auth, perm.CanManageResidents)
	mux.Handle("GET /api/residents", wrap(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/residents/detail", wrap(http.HandlerFunc(h.Detail)))
	mux.Handle("POST /api/residents", wrap(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/residents/{id}", wrap(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/residents/{id}", wrap(http.HandlerFunc(h.Delete)))
}

func registerStaffRoutes(mux *http.ServeMux, services RouterServices) {
	managers := &BuildingManagerHandlers{Backend: services.Backend}
	registerCRUD(mux, crudRoutes{
		Base:       "/api/building-managers",
		Create:     managers.Create,
		List:       managers.List,
		GetByID:    managers.Get,
		Update:     managers.Update,
		Delete:     managers.Delete,
		Middleware: capWrap(services.Auth, perm.CanManageBuildingManagers),
	})

	accountants := &AccountantHandlers{Backend: services.Backend}
	registerCRUD(mux, crudRoutes{
		Base:       "/api/accountants",
		Create:     accountants.Create,
		List:       accountants.List,
		GetByID:    accountants.Get,
		Update:     accountants.Update,
		Delete:     accountants.Delete,
		Middleware: capWrap(services.Auth, perm.CanManageAccountants),
	})
}

func registerBuildingRoutes(mux *http.ServeMux, h *BuildingHandlers, auth *service.AuthService) {
	wrap := capWrap(auth, perm.CanManageBuildings)
	mux.Handle("GET /api/buildings", wrap(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/buildings/manager/{id}", wrap(http.HandlerFunc(h.ByManager)))
	mux.Handle("PATCH /api/buildings/{id}/manager", wrap(http.HandlerFunc(h.AssignManager)))
}

func registerBillRoutes(mux *http.ServeMux, h *BillHandlers, auth *service.AuthService) {
	mux.Handle("GET /api/bills/my-bills", capWrap(auth, perm.CanViewMyBills)(http.HandlerFunc(h.MyBills)))

	manage := capWrap(auth, perm.CanManageOfflinePayments)
	mux.Handle("GET /api/bills", manage(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/bills", manage(http.HandlerFunc(h.Create)))
}

func registerPaymentRoutes(mux *http.ServeMux, h *PaymentHandlers, auth *service.AuthService) {
	qr := capWrap(auth, perm.CanCreateQRPayment)
	mux.Handle("POST /api/payments/qr", qr(http.HandlerFunc(h.CreateQR)))
	mux.Handle("POST /api/payments/qr/check", qr(http.HandlerFunc(h.CheckExpiry)))

	mux.Handle("GET /api/payments/history", capWrap(auth, perm.CanViewMyPayments)(http.HandlerFunc(h.History)))
	mux.Handle("POST /api/offline-payments", capWrap(auth, perm.CanManageOfflinePayments)(http.HandlerFunc(h.CreateOffline)))
}

func registerReceiptRoutes(mux *http.ServeMux, h *ReceiptHandlers, auth *service.AuthService) {
	wrap := capWrap(auth, perm.CanViewReceipts)
	mux.Handle("GET /api/receipts/{transID}", wrap(http.HandlerFunc(h.Get)))
}

func registerNotificationRoutes(mux *http.ServeMux, h *NotificationHandlers, auth *service.AuthService) {
	authed := authWrap(auth)
	mux.Handle("GET /api/notifications", authed(http.HandlerFunc(h.Mine)))
	mux.Handle("PATCH /api/notifications/{id}/read", authed(http.HandlerFunc(h.MarkRead)))
	mux.Handle("GET /api/notifications/unread-count", authed(http.HandlerFunc(h.UnreadCount)))

	mux.Handle("POST /api/notifications/broadcast",
		capWrap(auth, perm.CanBroadcastNotifications)(http.HandlerFunc(h.Broadcast)))
}

func registerAccountingRoutes(mux *http.ServeMux, h *AccountingHandlers, auth *service.AuthService) {
	wrap := capWrap(auth, perm.CanManageOfflinePayments)
	mux.Handle("POST /api/accounting/meter-readings", wrap(http.HandlerFunc(h.RecordMeterReading)))
	mux.Handle("POST /api/accounting/service-fees", wrap(http.HandlerFunc(h.SetServiceFee)))
	mux.Handle("POST /api/accounting/bills/calculate", wrap(http.HandlerFunc(h.CalculateBills)))
}

// capWrap is a nil-safe capability middleware factory. A nil auth service
// leaves routes unguarded, which only happens in tests that exercise
// handlers directly.
func capWrap(auth *service.AuthService, c perm.Capability) func(http.Handler) http.Handler {
	if auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return RequireCapability(auth, c)
}

// authWrap is the nil-safe counterpart for authentication-only routes.
func authWrap(auth *service.AuthService) func(http.Handler) http.Handler {
	if auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return RequireAuth(auth)
}

// crudRoutes registers standard CRUD routes for a resource base path.
type crudRoutes struct {
	Base       string
	Create     http.HandlerFunc
	List       http.HandlerFunc
	GetByID    http.HandlerFunc
	Update     http.HandlerFunc
	Delete     http.HandlerFunc
	Middleware func(http.Handler) http.Handler
}

func registerCRUD(mux *http.ServeMux, cfg crudRoutes) {
	if cfg.Base == "" {
		panic("registerCRUD: Base must not be empty") //nolint:forbidigo // Fail fast during server setup.
	}
	if cfg.Create == nil ||
		cfg.List == nil ||
		cfg.GetByID == nil ||
		cfg.Update == nil ||
		cfg.Delete == nil {
		panic("registerCRUD: nil handler for base " + cfg.Base) //nolint:forbidigo // Fail fast during server setup.
	}

	wrap := func(h http.HandlerFunc) http.Handler {
		if cfg.Middleware != nil {
			return cfg.Middleware(h)
		}
		return h
	}
	mux.Handle("POST "+cfg.Base, wrap(cfg.Create))
	mux.Handle("GET "+cfg.Base, wrap(cfg.List))
	mux.Handle("GET "+cfg.Base+"/{id}", wrap(cfg.GetByID))
	mux.Handle("PUT "+cfg.Base+"/{id}", wrap(cfg.Update))
	mux.Handle("DELETE "+cfg.Base+"/{id}", wrap(cfg.Delete))
}
