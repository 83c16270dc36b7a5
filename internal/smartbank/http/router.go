package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/smartbank/internal/smartbank/domain"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/service"
	"github.com/aussiebroadwan/smartbank/internal/smartbank/store"
	"github.com/aussiebroadwan/smartbank/pkg/bankapi"
	"github.com/aussiebroadwan/smartbank/pkg/httpx"
	"github.com/aussiebroadwan/smartbank/pkg/jwtx"
	"github.com/aussiebroadwan/smartbank/pkg/slogx"

	_ "github.com/aussiebroadwan/smartbank/api/smartbank" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	customer = string(domain.RoleCustomer)
	auditor  = string(domain.RoleAuditor)
)

// RateLimits groups the limiter profiles applied per route. The zero value is
// not usable; NewRouter fills it from the httpx defaults.
type RateLimits struct {
	Strict   httpx.RateLimitConfig
	Moderate httpx.RateLimitConfig
	Lenient  httpx.RateLimitConfig
	Public   httpx.RateLimitConfig
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	tokenTTL     time.Duration
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// Metrics is also the service Recorder.
	Metrics *Metrics
	Limits  RateLimits

	UserService *service.UserService
	KYCService  *service.KYCService
}

func NewRouter(
	verifier jwtx.Verifier,
	tokenTTL time.Duration,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		tokenTTL:     tokenTTL,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		Metrics:      NewMetrics(),
		Limits: RateLimits{
			Strict:   httpx.StrictLimit,
			Moderate: httpx.ModerateLimit,
			Lenient:  httpx.LenientLimit,
			Public:   httpx.PublicLimit,
		},
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerKYC()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		bankapi.ErrRouteNotFound.WriteError(w)
	}))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			SmartBank KYC API
//	@version		0.1.0
//	@description	Customer registration, login and the KYC document review workflow.
//	@description
//	@description				Tokens are HS256 signed JWTs carrying the caller's email, user id and role.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/smartbank
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle registers h under pattern with per-route instrumentation.
func (r *Router) handle(pattern string, h http.Handler) {
	r.Mux.Handle(pattern, r.Metrics.Instrument(pattern, h))
}

// authenticated wraps h with the access guard, an optional role gate and a
// per-user rate limit.
func (r *Router) authenticated(h http.Handler, limit httpx.RateLimitConfig, gate httpx.Middleware) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		gate,
		httpx.RateLimitByUser(limit),
	)
}

func (r *Router) registerAuth() {
	// POST /auth/register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{UserService: r.UserService}
	r.handle("POST /auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(r.Limits.Strict),
		),
	)

	// POST /auth/login - strict rate limit by IP + email to slow down guessing
	loginHandler := &LoginHandler{UserService: r.UserService, TokenTTL: r.tokenTTL}
	r.handle("POST /auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIPAndJSONField(r.Limits.Strict, "email"),
		),
	)
}

func (r *Router) registerUsers() {
	profileHandler := &ProfileHandler{UserService: r.UserService}
	r.handle("GET /users/me", r.authenticated(profileHandler, r.Limits.Lenient, nil))

	auditHandler := &AuditTrailHandler{KYCService: r.KYCService}
	r.handle("GET /users/{id}/audit", r.authenticated(auditHandler, r.Limits.Moderate,
		httpx.RequireRole(auditor, bankapi.ErrOnlyAuditorsAudit.Detail),
	))
}

func (r *Router) registerKYC() {
	uploadHandler := &KYCUploadHandler{KYCService: r.KYCService}
	r.handle("POST /kyc/upload", r.authenticated(uploadHandler, r.Limits.Moderate,
		httpx.RequireRole(customer, bankapi.ErrOnlyCustomersUpload.Detail),
	))

	mineHandler := &KYCMineHandler{KYCService: r.KYCService}
	r.handle("GET /kyc/me", r.authenticated(mineHandler, r.Limits.Lenient,
		httpx.RequireRole(customer, bankapi.ErrOnlyCustomersView.Detail),
	))

	pendingHandler := &KYCPendingHandler{KYCService: r.KYCService}
	r.handle("GET /kyc/pending", r.authenticated(pendingHandler, r.Limits.Lenient,
		httpx.RequireRole(auditor, bankapi.ErrOnlyAuditorsPending.Detail),
	))

	approveHandler := &KYCApproveHandler{KYCService: r.KYCService}
	r.handle("PUT /kyc/{id}/approve", r.authenticated(approveHandler, r.Limits.Moderate,
		httpx.RequireRole(auditor, bankapi.ErrOnlyAuditorsApprove.Detail),
	))

	rejectHandler := &KYCRejectHandler{KYCService: r.KYCService}
	r.handle("PUT /kyc/{id}/reject", r.authenticated(rejectHandler, r.Limits.Moderate,
		httpx.RequireRole(auditor, bankapi.ErrOnlyAuditorsReject.Detail),
	))
}

func (r *Router) registerSystem() {
	r.handle("GET /{$}",
		httpx.Chain(RootHandler(),
			httpx.RateLimitByIP(r.Limits.Public),
		),
	)

	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.Limits.Lenient),
		),
	)
	r.handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(r.Limits.Lenient),
		),
	)

	r.Mux.Handle("GET /metrics", r.Metrics.Handler())
}
