package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/ecomarket/docs"
	authhandlers "github.com/GlebRadaev/ecomarket/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/ecomarket/internal/handlers/balance"
	clientshandlers "github.com/GlebRadaev/ecomarket/internal/handlers/clients"
	pointshandlers "github.com/GlebRadaev/ecomarket/internal/handlers/points"
	productshandlers "github.com/GlebRadaev/ecomarket/internal/handlers/products"
	requestshandlers "github.com/GlebRadaev/ecomarket/internal/handlers/requests"
	rewardshandlers "github.com/GlebRadaev/ecomarket/internal/handlers/rewards"
	usershandlers "github.com/GlebRadaev/ecomarket/internal/handlers/users"
	"github.com/GlebRadaev/ecomarket/internal/service"
	"github.com/GlebRadaev/ecomarket/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	Grant(w http.ResponseWriter, r *http.Request)
}

type UsersHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	CreateUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
	AdjustPoints(w http.ResponseWriter, r *http.Request)
}

type RewardsHandler interface {
	ListActive(w http.ResponseWriter, r *http.Request)
	Redeem(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	GetReward(w http.ResponseWriter, r *http.Request)
	CreateReward(w http.ResponseWriter, r *http.Request)
	UpdateReward(w http.ResponseWriter, r *http.Request)
	DeleteReward(w http.ResponseWriter, r *http.Request)
	GetVoucher(w http.ResponseWriter, r *http.Request)
	ClaimVoucher(w http.ResponseWriter, r *http.Request)
}

type RequestsHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

// CRUDHandler is shared by products, clients and collection points.
type CRUDHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	BalanceHandler  BalanceHandler
	UsersHandler    UsersHandler
	RewardsHandler  RewardsHandler
	RequestsHandler RequestsHandler
	ProductsHandler CRUDHandler
	ClientsHandler  CRUDHandler
	PointsHandler   CRUDHandler

	jwtService  auth.JWTServiceInterface
	corsOrigins []string
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, corsOrigins []string) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		BalanceHandler:  balancehandlers.New(s.LedgerService, s.RewardService),
		UsersHandler:    usershandlers.New(s.AuthService, s.LedgerService),
		RewardsHandler:  rewardshandlers.New(s.RewardService),
		RequestsHandler: requestshandlers.New(s.RequestService),
		ProductsHandler: productshandlers.New(s.ProductService),
		ClientsHandler:  clientshandlers.New(s.ClientService),
		PointsHandler:   pointshandlers.New(s.PointService),
		jwtService:      jwtService,
		corsOrigins:     corsOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		cors.Handler(cors.Options{
			AllowedOrigins:   h.corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.AuthHandler.Register)
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Get("/products", h.ProductsHandler.List)
		r.Get("/products/{id}", h.ProductsHandler.Get)
		r.Get("/collection-points", h.PointsHandler.List)
		r.Get("/collection-points/{id}", h.PointsHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))

			r.Route("/user", func(r chi.Router) {
				r.Get("/balance", h.BalanceHandler.GetBalance)
				r.Get("/history", h.BalanceHandler.GetHistory)
				r.Get("/summary", h.BalanceHandler.GetSummary)
			})
			r.Get("/rewards", h.RewardsHandler.ListActive)
			r.Post("/rewards/{id}/redeem", h.RewardsHandler.Redeem)
			r.Get("/requests", h.RequestsHandler.ListOwn)
			r.Post("/requests", h.RequestsHandler.Create)
			r.Get("/clients", h.ClientsHandler.List)
			r.Get("/clients/{id}", h.ClientsHandler.Get)

			r.Route("/admin", h.adminRoutes)
		})
	})

	return r
}

func (h *Handlers) adminRoutes(r chi.Router) {
	r.Use(auth.RequireAdmin)

	r.Get("/users", h.UsersHandler.ListUsers)
	r.Post("/users", h.UsersHandler.CreateUser)
	r.Get("/users/{id}", h.UsersHandler.GetUser)
	r.Put("/users/{id}", h.UsersHandler.UpdateUser)
	r.Delete("/users/{id}", h.UsersHandler.DeleteUser)
	r.Post("/users/{id}/points", h.UsersHandler.AdjustPoints)
	r.Post("/points/grant", h.BalanceHandler.Grant)

	r.Route("/rewards", func(r chi.Router) {
		r.Get("/", h.RewardsHandler.ListAll)
		r.Post("/", h.RewardsHandler.CreateReward)
		r.Get("/{id}", h.RewardsHandler.GetReward)
		r.Put("/{id}", h.RewardsHandler.UpdateReward)
		r.Delete("/{id}", h.RewardsHandler.DeleteReward)
	})
	r.Get("/vouchers/{code}", h.RewardsHandler.GetVoucher)
	r.Post("/vouchers/{code}/claim", h.RewardsHandler.ClaimVoucher)

	r.Route("/requests", func(r chi.Router) {
		r.Get("/", h.RequestsHandler.ListAll)
		r.Put("/{id}/status", h.RequestsHandler.UpdateStatus)
		r.Delete("/{id}", h.RequestsHandler.Delete)
	})

	writes := func(prefix string, handler CRUDHandler) {
		r.Post(prefix, handler.Create)
		r.Put(prefix+"/{id}", handler.Update)
		r.Delete(prefix+"/{id}", handler.Delete)
	}
	writes("/products", h.ProductsHandler)
	writes("/clients", h.ClientsHandler)
	writes("/collection-points", h.PointsHandler)
}
