package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/stressbuster/stressbuster-api/api"
	"github.com/stressbuster/stressbuster-api/api/scheduler"
	"github.com/stressbuster/stressbuster-api/booking"
	"github.com/stressbuster/stressbuster-api/chatbot"
	"github.com/stressbuster/stressbuster-api/config"
	"github.com/stressbuster/stressbuster-api/databases"
	"github.com/stressbuster/stressbuster-api/databases/postgres"
	"github.com/stressbuster/stressbuster-api/mailer"
	"github.com/stressbuster/stressbuster-api/models"
)

// App stores the router, the stores and the services built on them, so they can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Stores    databases.Stores
	Mail      mailer.Mailer
	Metrics   *api.MetricsCollector
	Booking   *booking.Service
	Scheduler *scheduler.Scheduler

	ctx     context.Context
	cancel  context.CancelFunc
	closeDB func(ctx context.Context) error
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	if a.ctx == nil {
		a.ctx, a.cancel = context.WithCancel(context.Background())
	}
	if a.Metrics == nil {
		a.Metrics = api.NewMetricsCollector()
	}
	if a.Mail == nil {
		a.Mail = mailer.Noop{}
	}
	if a.Booking == nil {
		a.Booking = booking.NewService(a.Stores.Counselors, a.Stores.Appointments)
	}

	render := api.Renderer{Debug: a.Config.Development()}
	tokens := api.NewTokenIssuer(a.Config.JWTSecret, a.Config.JWTTTL)
	guard := api.NewGuard(a.ctx, tokens, a.Config.AuthCacheTTL, render)
	base := Base{Render: render, QueryTimeout: a.Config.QueryTimeout}

	auth := Auth{Base: base, Users: a.Stores.Users, Admins: a.Stores.Admins, Tokens: tokens}
	u := User{Base: base, DB: a.Stores.Users}
	chat := Chatbot{Base: base, Service: chatbot.NewService(a.Stores.Chat), Origins: a.Config.CORSOrigins}
	appt := Appointment{Base: base, Booking: a.Booking, Users: a.Stores.Users, Mail: a.Mail}
	res := Resource{Base: base, DB: a.Stores.Resources}
	help := Helpline{Base: base, DB: a.Stores.Helplines}
	game := Game{Base: base, DB: a.Stores.Games}
	admin := Admin{Base: base, Booking: a.Booking}
	metrics := MetricsHandler{Base: base, Metrics: a.Metrics}
	media := CloudinaryHandler{Base: base, Config: a.Config.Cloudinary}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		render.Error(w, req, api.NotFound(fmt.Sprintf("Route %s not found", req.URL.Path)))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		render.Error(w, req, &api.HTTPError{Status: http.StatusMethodNotAllowed, Message: fmt.Sprintf("Method %s not allowed on %s", req.Method, req.URL.Path)})
	})
	r.Use(api.MetricsMiddleware(a.Metrics))

	apiRoutes := r.PathPrefix("/api").Subrouter()

	// healthchex
	apiRoutes.HandleFunc("/health", a.healthCheckHandler).Methods("GET")

	apiRoutes.Handle("/auth/register", http.HandlerFunc(auth.RegisterHandler)).Methods("POST")
	apiRoutes.Handle("/auth/login", http.HandlerFunc(auth.LoginHandler)).Methods("POST")

	apiRoutes.Handle("/users/profile", guard.Required(http.HandlerFunc(u.ProfileHandler))).Methods("GET")
	apiRoutes.Handle("/users/profile", guard.Required(http.HandlerFunc(u.UpdateProfileHandler))).Methods("PUT")

	apiRoutes.Handle("/chatbot/message", guard.Optional(http.HandlerFunc(chat.MessageHandler))).Methods("POST")
	apiRoutes.Handle("/chatbot/conversation/{sessionId}", guard.Optional(http.HandlerFunc(chat.ConversationHandler))).Methods("GET")
	apiRoutes.Handle("/chatbot/ws", guard.Optional(http.HandlerFunc(chat.WebSocketHandler))).Methods("GET")

	apiRoutes.Handle("/appointments/counselors", http.HandlerFunc(appt.CounselorsHandler)).Methods("GET")
	apiRoutes.Handle("/appointments/slots/{counselorId}/{date}", http.HandlerFunc(appt.SlotsHandler)).Methods("GET")
	apiRoutes.Handle("/appointments/my", guard.Required(http.HandlerFunc(appt.MyAppointmentsHandler))).Methods("GET")
	apiRoutes.Handle("/appointments/{id}/cancel", guard.Required(http.HandlerFunc(appt.CancelHandler))).Methods("PUT")
	apiRoutes.Handle("/appointments", guard.Optional(http.HandlerFunc(appt.BookHandler))).Methods("POST")

	apiRoutes.Handle("/resources/categories", http.HandlerFunc(res.CategoriesHandler)).Methods("GET")
	apiRoutes.Handle("/resources/featured/list", http.HandlerFunc(res.FeaturedHandler)).Methods("GET")
	apiRoutes.Handle("/resources/{id}", http.HandlerFunc(res.ResourceHandler)).Methods("GET")
	apiRoutes.Handle("/resources", http.HandlerFunc(res.ListHandler)).Methods("GET")

	apiRoutes.Handle("/helplines", http.HandlerFunc(help.HelplinesHandler)).Methods("GET")

	apiRoutes.Handle("/games/sessions/my", guard.Required(http.HandlerFunc(game.MySessionsHandler))).Methods("GET")
	apiRoutes.Handle("/games/sessions", guard.Optional(http.HandlerFunc(game.SaveSessionHandler))).Methods("POST")
	apiRoutes.Handle("/games/sessions", http.HandlerFunc(game.RecentSessionsHandler)).Methods("GET")

	apiRoutes.Handle("/admin/login", http.HandlerFunc(auth.AdminLoginHandler)).Methods("POST")
	apiRoutes.Handle("/admin/appointments", guard.Admin(http.HandlerFunc(admin.AppointmentsHandler))).Methods("GET")
	apiRoutes.Handle("/admin/appointments/{id}/status", guard.Admin(http.HandlerFunc(admin.UpdateStatusHandler))).Methods("PUT")
	apiRoutes.Handle("/admin/resources", guard.Admin(http.HandlerFunc(res.CreateHandler))).Methods("POST")
	apiRoutes.Handle("/admin/media/signature", guard.Admin(http.HandlerFunc(media.GenerateSignature))).Methods("POST")
	apiRoutes.Handle("/admin/metrics", guard.Admin(http.HandlerFunc(metrics.GetMetricsDashboard))).Methods("GET")

	return r
}

// Handler wraps the router with the middlewares that must also see unmatched requests,
// CORS preflights included
func (a *App) Handler() http.Handler {
	return api.CORSMiddleware(a.Config.CORSOrigins)(api.TimeoutMiddleware(a.Config.RequestTimeout)(a.Router))
}

// Initialize is invoked by main to connect with the database, create the router and the
// reminder scheduler
func (a *App) Initialize(ctx context.Context) error {
	a.ctx, a.cancel = context.WithCancel(ctx)

	var err error
	switch a.Config.DBDriver {
	case config.DriverPostgres:
		err = a.initPostgres(ctx)
	default:
		err = a.initMongo(ctx)
	}
	if err != nil {
		a.cancel()
		return err
	}

	a.Mail = mailer.New(&a.Config)
	a.initializeRoutes()
	a.Scheduler = scheduler.NewScheduler(a.Config.ReminderSchedule, a.Booking, a.Stores.Users, a.Mail)
	return nil
}

func (a *App) initMongo(ctx context.Context) error {
	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}
	if err := client.Connect(ctx); err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	db := databases.NewDatabase(&a.Config, client)
	if err := databases.EnsureIndexes(ctx, db); err != nil {
		zap.S().With(err).Error("failed to create indexes")
		return err
	}

	a.Stores = databases.NewStores(db)
	a.closeDB = client.Disconnect
	zap.S().Infow("stressbuster-api has connected to the database", "driver", config.DriverMongo, "database", a.Config.DatabaseName)
	return nil
}

func (a *App) initPostgres(ctx context.Context) error {
	db, err := postgres.Open(ctx, &a.Config)
	if err != nil {
		zap.S().With(err).Error("failed to connect to database")
		return err
	}

	a.Stores = postgres.NewStores(db)
	a.closeDB = func(context.Context) error { return db.Close() }
	zap.S().Infow("stressbuster-api has connected to the database", "driver", config.DriverPostgres)
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// Close stops the scheduler and releases the database connection
func (a *App) Close(ctx context.Context) error {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	if a.cancel != nil {
		a.cancel()
	}
	if a.closeDB != nil {
		return a.closeDB(ctx)
	}
	return nil
}

func (a *App) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	api.Renderer{}.Success(w, http.StatusOK, "StressBuster API is running", models.HealthCheckResponse{
		Alive:       true,
		Environment: a.Config.Env,
		Timestamp:   time.Now().UTC(),
	})
}
