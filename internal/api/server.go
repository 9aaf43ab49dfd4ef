package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dangdinh87/gym-tracker/internal/service"
)

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	workoutService   service.WorkoutServiceI
	catalogService   service.CatalogServiceI
	nutritionService service.NutritionServiceI
	templateService  service.TemplateServiceI
	jwtService       JWTServiceI
}

type ServicesList struct {
	UserService      service.UserServiceI
	WorkoutService   service.WorkoutServiceI
	CatalogService   service.CatalogServiceI
	NutritionService service.NutritionServiceI
	TemplateService  service.TemplateServiceI
	JwtService       JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		workoutService:   servicesOptions.WorkoutService,
		catalogService:   servicesOptions.CatalogService,
		nutritionService: servicesOptions.NutritionService,
		templateService:  servicesOptions.TemplateService,
		jwtService:       servicesOptions.JwtService,
	}
}

func (s *Server) Routes() *chi.Mux {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Route("/workouts", func(r chi.Router) {
				r.Post("/", s.CreateWorkout)
				r.Get("/", s.GetWorkouts)
				r.Get("/progress", s.GetProgress)
				r.Get("/export", s.ExportWorkouts)
				r.Post("/import", s.ImportWorkouts)
				r.Get("/{id}", s.GetWorkout)
				r.Patch("/{id}", s.UpdateWorkout)
				r.Delete("/{id}", s.DeleteWorkout)
			})
			r.Route("/exercises", func(r chi.Router) {
				r.Get("/", s.GetExercises)
				r.Get("/facets", s.GetFacets)
				r.Get("/muscles", s.GetMuscleGroups)
				r.Get("/{id}", s.GetExercise)
			})
			r.Route("/nutrition", func(r chi.Router) {
				r.Get("/foods", s.GetFoods)
				r.Post("/entries", s.LogFood)
				r.Delete("/entries/{id}", s.DeleteFoodEntry)
				r.Get("/daily", s.GetDailySummary)
				r.Get("/goals", s.GetGoals)
				r.Put("/goals", s.UpdateGoals)
			})
			r.Route("/templates", func(r chi.Router) {
				r.Get("/", s.GetTemplates)
				r.Post("/{id}/start", s.StartFromTemplate)
			})
		})
	})
	return s.mx
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.Routes())
}
