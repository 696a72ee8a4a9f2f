package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/askaruly/dastarhan/internal/adapter/logger"
)

type Handlers struct {
	Orders    *OrderHandler
	Customers *CustomerHandler
	Employees *EmployeeHandler
	Menu      *MenuHandler
	Summary   *SummaryHandler
	Workers   *WorkerHandler
}

func NewRouter(h Handlers, lgr logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RecoveryMiddleware(lgr))
	r.Use(LoggingMiddleware(lgr))

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.Orders.Create)
		r.Get("/", h.Orders.List)
		r.Get("/{id}", h.Orders.Get)
		r.Put("/{id}", h.Orders.Replace)
		r.Patch("/{id}", h.Orders.Patch)
		r.Delete("/{id}", h.Orders.Delete)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", h.Customers.Create)
		r.Get("/", h.Customers.List)
		r.Get("/{id}", h.Customers.Get)
		r.Put("/{id}", h.Customers.Update)
		r.Delete("/{id}", h.Customers.Delete)
	})

	r.Route("/employees", func(r chi.Router) {
		r.Post("/", h.Employees.Create)
		r.Get("/", h.Employees.List)
		r.Get("/{id}", h.Employees.Get)
		r.Put("/{id}", h.Employees.Update)
		r.Delete("/{id}", h.Employees.Delete)
	})

	r.Route("/menu", func(r chi.Router) {
		r.Post("/", h.Menu.Create)
		r.Get("/", h.Menu.List)
		r.Get("/{id}", h.Menu.Get)
		r.Put("/{id}", h.Menu.Update)
		r.Delete("/{id}", h.Menu.Delete)
	})

	r.Get("/summary", h.Summary.Get)
	r.Get("/workers/status", h.Workers.GetStatus)

	return r
}
