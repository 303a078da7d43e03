package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/tasktracker-server/internal/api/http/handler"
	"github.com/dtroode/tasktracker-server/internal/api/http/middleware"
	"github.com/dtroode/tasktracker-server/internal/api/http/response"
	"github.com/dtroode/tasktracker-server/internal/apierror"
	"github.com/dtroode/tasktracker-server/internal/logger"
)

// Router wires the HTTP endpoints of the task tracker.
//
// Reads are public. Every mutating route sits behind the API token check.
type Router struct {
	taskService handler.TaskService
	userService handler.UserService
	apiToken    string
	writer      *response.Writer
	logger      *logger.Logger
}

// New creates new Router instance.
func New(
	taskService handler.TaskService,
	userService handler.UserService,
	apiToken string,
	exposeErrors bool,
	logger *logger.Logger,
) *Router {
	return &Router{
		taskService: taskService,
		userService: userService,
		apiToken:    apiToken,
		writer:      response.NewWriter(logger, exposeErrors),
		logger:      logger,
	}
}

// Register builds the routing table.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.apiToken, r.writer, r.logger)
	stub := handler.NotImplemented(r.writer)

	mux := chi.NewRouter()
	mux.Use(logging.Handle)
	mux.Use(chimiddleware.Recoverer)

	mux.NotFound(func(w http.ResponseWriter, req *http.Request) {
		r.writer.Error(w, req, apierror.NewErrRouteNotFound())
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		r.writer.Error(w, req, apierror.NewErrMethodNotAllowed())
	})

	r.registerUserRoutes(mux, authenticate, stub)
	r.registerTaskRoutes(mux, authenticate, stub)

	return mux
}

func (r *Router) registerUserRoutes(mux chi.Router, authenticate *middleware.Authenticate, stub http.HandlerFunc) {
	users := handler.NewUser(r.userService, r.writer, r.logger)

	mux.Route("/users", func(rt chi.Router) {
		rt.Get("/", users.List)
		rt.Get("/{id}/tasks", users.Tasks)
		rt.Get("/{id}", stub)

		rt.Group(func(rt chi.Router) {
			rt.Use(authenticate.Handle)
			rt.Post("/", users.Create)
			rt.Put("/{id}", stub)
			rt.Delete("/{id}", stub)
		})
	})
}

func (r *Router) registerTaskRoutes(mux chi.Router, authenticate *middleware.Authenticate, stub http.HandlerFunc) {
	tasks := handler.NewTask(r.taskService, r.writer, r.logger)

	mux.Route("/tasks", func(rt chi.Router) {
		rt.Get("/", stub)
		rt.Get("/{id}", stub)

		rt.Group(func(rt chi.Router) {
			rt.Use(authenticate.Handle)
			rt.Post("/", tasks.Create)
			rt.Put("/{id}", tasks.Update)
			rt.Delete("/{id}", tasks.Delete)
		})
	})
}
