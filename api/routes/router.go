package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shoplite/shoplite-backend/api/controllers"
	"github.com/shoplite/shoplite-backend/api/middleware"
	"github.com/shoplite/shoplite-backend/internal/announcements"
	"github.com/shoplite/shoplite-backend/internal/codepool"
	"github.com/shoplite/shoplite-backend/internal/courses"
	"github.com/shoplite/shoplite-backend/internal/dashboard"
	"github.com/shoplite/shoplite-backend/internal/files"
	"github.com/shoplite/shoplite-backend/internal/orders"
	"github.com/shoplite/shoplite-backend/internal/products"
	"github.com/shoplite/shoplite-backend/internal/transfer"
	"github.com/shoplite/shoplite-backend/pkg/config"
	"github.com/shoplite/shoplite-backend/pkg/logger"
	"github.com/shoplite/shoplite-backend/pkg/metrics"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config        *config.Config
	Logger        *logger.Logger
	Store         controllers.Pinger
	Registry      *prometheus.Registry
	HTTPMetrics   *metrics.HTTPMetrics
	Products      products.Service
	Orders        orders.Service
	CodePool      codepool.Service
	Files         files.Service
	Courses       courses.Service
	Announcements announcements.Service
	Dashboard     dashboard.Service
	Transfer      transfer.Service
}

func NewRouter(d Deps) http.Handler {
	cfg := d.Config
	logg := d.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(d.HTTPMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(logg, d.Store))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))

	r.Route("/admin", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(d.Products, logg))
			r.Post("/", controllers.CreateProduct(d.Products, logg))
			r.Get("/{id}", controllers.GetProduct(d.Products, logg))
			r.Put("/{id}", controllers.UpdateProduct(d.Products, logg))
			r.Delete("/{id}", controllers.DeleteProduct(d.Products, logg))
			r.Post("/{id}/delete", controllers.DeleteProduct(d.Products, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(d.Orders, logg))
			r.Post("/", controllers.CreateOrder(d.Orders, logg))
			r.Get("/{id}", controllers.GetOrder(d.Orders, logg))
			r.Post("/{id}/status", controllers.SetOrderStatus(d.Orders, logg))
			r.Post("/{id}/fulfill", controllers.FulfillOrder(d.Orders, logg))
			r.Post("/{id}/refund", controllers.RefundOrder(d.Orders, logg))
			r.Post("/{id}/void", controllers.VoidOrder(d.Orders, logg))
		})

		r.Route("/resources/files", func(r chi.Router) {
			r.Get("/", controllers.ListFiles(d.Files, logg))
			r.Post("/", controllers.SaveFile(d.Files, logg))
		})

		r.Route("/code-pool", func(r chi.Router) {
			r.Get("/", controllers.ListCodes(d.CodePool, logg))
			r.Post("/", controllers.AddCodes(d.CodePool, logg))
			r.Post("/use", controllers.UseCode(d.CodePool, logg))
		})

		r.Route("/courses", func(r chi.Router) {
			r.Get("/", controllers.ListCourses(d.Courses, logg))
			r.Post("/", controllers.CreateCourse(d.Courses, logg))
			r.Put("/{id}", controllers.UpdateCourse(d.Courses, logg))
			r.Delete("/{id}", controllers.DeleteCourse(d.Courses, logg))
		})

		r.Route("/chapters", func(r chi.Router) {
			r.Get("/", controllers.ListChapters(d.Courses, logg))
			r.Post("/", controllers.AddChapter(d.Courses, logg))
			r.Put("/{id}", controllers.UpdateChapter(d.Courses, logg))
			r.Delete("/{id}", controllers.DeleteChapter(d.Courses, logg))
		})

		r.Route("/announcements", func(r chi.Router) {
			r.Get("/", controllers.ListPosts(d.Announcements, logg))
			r.Post("/", controllers.CreatePost(d.Announcements, logg))
			r.Put("/{id}", controllers.UpdatePost(d.Announcements, logg))
			r.Delete("/{id}", controllers.DeletePost(d.Announcements, logg))
		})

		r.Get("/dashboard/metrics", controllers.DashboardMetrics(d.Dashboard, cfg.Dashboard, logg))

		r.Post("/export", controllers.ExportData(d.Transfer, logg))
		r.Post("/import", controllers.ImportData(d.Transfer, logg))
	})

	return r
}
