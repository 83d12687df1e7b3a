package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/sync/errgroup"

	"github.com/bluemoon-pm/bluemoon-ui/internal/backend"
	domainauth "github.com/bluemoon-pm/bluemoon-ui/internal/domain/auth"
	"github.com/bluemoon-pm/bluemoon-ui/internal/domain/perm"
)

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// DashboardSummary holds the per-role headline figures for the dashboard
// landing screen. Pointer fields are omitted when the underlying lookup
// failed or does not apply to the role.
type DashboardSummary struct {
	UnpaidBills         *int     `json:"unpaidBills,omitempty"`
	AmountDue           *float64 `json:"amountDue,omitempty"`
	Apartments          *int     `json:"apartments,omitempty"`
	OutstandingBills    *int     `json:"outstandingBills,omitempty"`
	UnreadNotifications *int     `json:"unreadNotifications,omitempty"`
}

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Backend   *backend.Client
	Evaluator JMESPathEvaluator
	Logger    *slog.Logger
}

// DashboardService computes role-specific dashboard summaries by projecting
// JMESPath expressions over raw backend responses.
type DashboardService struct {
	backend *backend.Client
	jems    JMESPathEvaluator
	logger  *slog.Logger
}

// NewDashboardService constructs a new DashboardService.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &DashboardService{backend: opts.Backend, jems: jems, logger: logger}
}

// Summary builds the dashboard figures for a session. The lookups are
// independent backend reads, so they run concurrently; each fill writes a
// disjoint set of fields. Lookups degrade independently: a failed backend
// call logs a warning and leaves its field unset instead of failing the
// whole screen.
func (s *DashboardService) Summary(ctx context.Context, sess *domainauth.Session) DashboardSummary {
	var out DashboardSummary

	g, gctx := errgroup.WithContext(ctx)

	if perm.Allowed(perm.CanViewMyBills, sess.Role) {
		g.Go(func() error {
			s.fillResidentBills(gctx, sess.Token, &out)
			return nil
		})
	}
	if perm.Allowed(perm.CanViewApartments, sess.Role) {
		g.Go(func() error {
			s.fillApartmentCount(gctx, sess.Token, &out)
			return nil
		})
	}
	if perm.Allowed(perm.CanManageOfflinePayments, sess.Role) {
		g.Go(func() error {
			s.fillOutstandingBills(gctx, sess.Token, &out)
			return nil
		})
	}
	g.Go(func() error {
		if count, err := s.backend.UnreadCount(gctx, sess.Token); err != nil {
			s.logger.WarnContext(gctx, "dashboard unread count failed", slog.Any("error", err))
		} else {
			out.UnreadNotifications = &count.Count
		}
		return nil
	})

	_ = g.Wait()
	return out
}

func (s *DashboardService) fillResidentBills(ctx context.Context, token string, out *DashboardSummary) {
	raw, err := s.backend.Raw(ctx, token, "/api/bills/my-bills")
	if err != nil {
		s.logger.WarnContext(ctx, "dashboard my-bills failed", slog.Any("error", err))
		return
	}
	out.UnpaidBills = s.projectInt(ctx, raw, "length([?status=='Unpaid'])")
	out.AmountDue = s.projectFloat(ctx, raw, "sum([?status=='Unpaid'].total)")
}

func (s *DashboardService) fillApartmentCount(ctx context.Context, token string, out *DashboardSummary) {
	q := url.Values{}
	q.Set("skip", "0")
	q.Set("limit", "1000")
	raw, err := s.backend.Raw(ctx, token, "/api/apartments/get-apartments-data?"+q.Encode())
	if err != nil {
		s.logger.WarnContext(ctx, "dashboard apartments failed", slog.Any("error", err))
		return
	}
	out.Apartments = s.projectInt(ctx, raw, "length(@)")
}

func (s *DashboardService) fillOutstandingBills(ctx context.Context, token string, out *DashboardSummary) {
	raw, err := s.backend.Raw(ctx, token, "/api/accounting/bills?status=Unpaid")
	if err != nil {
		s.logger.WarnContext(ctx, "dashboard outstanding bills failed", slog.Any("error", err))
		return
	}
	out.OutstandingBills = s.projectInt(ctx, raw, "length(@)")
}

// projectInt evaluates expr over raw JSON and coerces the result to an int.
func (s *DashboardService) projectInt(ctx context.Context, raw json.RawMessage, expr string) *int {
	f := s.projectFloat(ctx, raw, expr)
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// projectFloat evaluates expr over raw JSON and coerces the result to a
// float64. JMESPath yields float64 for all numeric results.
func (s *DashboardService) projectFloat(ctx context.Context, raw json.RawMessage, expr string) *float64 {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.WarnContext(ctx, "dashboard projection decode failed", slog.Any("error", err))
		return nil
	}

	res, err := s.jems.Evaluate(expr, data)
	if err != nil {
		s.logger.WarnContext(ctx, "dashboard projection failed",
			slog.String("expr", expr), slog.Any("error", err))
		return nil
	}

	f, ok := res.(float64)
	if !ok {
		return nil
	}
	return &f
}
