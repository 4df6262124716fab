package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/messagely/internal/messagely/service"
	"github.com/aussiebroadwan/messagely/internal/messagely/store"
	"github.com/aussiebroadwan/messagely/pkg/httpx"
	"github.com/aussiebroadwan/messagely/pkg/jwtx"
	"github.com/aussiebroadwan/messagely/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       jwtx.Signer
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	UserService    *service.UserService
	TokenService   *service.TokenService
	MessageService *service.MessageService

	// StrictLimit guards /login and /register per IP.
	StrictLimit httpx.RateLimitConfig
	// LenientLimit covers authenticated and health routes.
	LenientLimit httpx.RateLimitConfig
}

func NewRouter(
	signer jwtx.Signer,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		StrictLimit:  httpx.StrictLimit,
		LenientLimit: httpx.LenientLimit,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerMessages()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Messagely API
//	@version		0.1.0
//	@description	Users register, log in and exchange short text messages.
//	@description	Tokens are HS256 JWTs carrying the username claim.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT from /login or /register. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	login := &LoginHandler{UserService: r.UserService, TokenService: r.TokenService}
	register := &RegisterHandler{UserService: r.UserService, TokenService: r.TokenService}

	// Credential endpoints - strict rate limit by IP to slow brute force
	r.Mux.Handle("POST /login",
		httpx.Chain(login,
			httpx.RateLimitByIP(r.StrictLimit),
		),
	)
	r.Mux.Handle("POST /register",
		httpx.Chain(register,
			httpx.RateLimitByIP(r.StrictLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(r.LenientLimit),
		)
	}

	r.Mux.Handle("GET /users", secured(h.HandleList))
	r.Mux.Handle("GET /users/{username}", secured(h.HandleGet))
	r.Mux.Handle("GET /users/{username}/from", secured(h.HandleMessagesFrom))
	r.Mux.Handle("GET /users/{username}/to", secured(h.HandleMessagesTo))
}

func (r *Router) registerMessages() {
	h := &SendMessageHandler{MessageService: r.MessageService}

	r.Mux.Handle("POST /messages",
		httpx.Chain(h,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(r.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimitByIP(r.LenientLimit),
		),
	)
}
