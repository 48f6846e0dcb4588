package routes

import (
	"campus-events/config"
	"campus-events/handlers"
	"campus-events/middleware"
	"campus-events/session"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Events     *handlers.EventHandler
	Attendance *handlers.AttendanceHandler
	Pages      *handlers.PageHandler
}

func SetupRoutes(cfg config.Config, sessions session.Store, h Handlers) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = middleware.NotFoundHandler()
	router.Use(middleware.LoadSession(cfg.Cookie, sessions))

	router.HandleFunc("/", middleware.ErrorHandler(h.Pages.IndexHandler)).Methods("GET")
	router.HandleFunc("/index.html", middleware.ErrorHandler(h.Pages.IndexHandler)).Methods("GET")
	router.HandleFunc("/register", middleware.ErrorHandler(h.Pages.RegisterPageHandler)).Methods("GET")
	router.HandleFunc("/admin_login", middleware.ErrorHandler(h.Pages.AdminLoginPageHandler)).Methods("GET")
	router.HandleFunc("/admin_dashboard", middleware.ErrorHandler(h.Pages.AdminDashboardHandler)).Methods("GET")
	router.HandleFunc("/dashboard", middleware.ErrorHandler(h.Pages.DashboardHandler)).Methods("GET")

	router.HandleFunc("/api/register", middleware.ErrorHandler(h.Auth.RegisterHandler)).Methods("POST")
	router.HandleFunc("/api/login", middleware.ErrorHandler(h.Auth.LoginHandler)).Methods("POST")
	router.HandleFunc("/api/admin_login", middleware.ErrorHandler(h.Auth.AdminLoginHandler)).Methods("POST")
	router.HandleFunc("/api/logout", middleware.ErrorHandler(h.Auth.LogoutHandler)).Methods("POST")

	router.HandleFunc("/api/events", middleware.ErrorHandler(h.Events.ListHandler)).Methods("GET")
	router.HandleFunc("/api/events", middleware.ErrorHandler(h.Events.SaveHandler)).Methods("POST")
	router.HandleFunc("/api/add_event", middleware.ErrorHandler(h.Events.AddHandler)).Methods("POST")

	router.HandleFunc("/api/attendance", middleware.ErrorHandler(h.Attendance.GetHandler)).Methods("GET")
	router.HandleFunc("/api/attendance", middleware.ErrorHandler(h.Attendance.UpdateHandler)).Methods("POST")

	return router
}
