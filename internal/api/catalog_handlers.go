package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/internal/stats"
	"github.com/dangdinh87/gym-tracker/pkg/httputil"
)

func (s *Server) GetExercises(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	query := r.URL.Query()
	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 12
	}
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	filter := stats.ExerciseFilter{
		SearchTerm: query.Get("search"),
		Category:   query.Get("category"),
		Level:      query.Get("level"),
		Equipment:  query.Get("equipment"),
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	exercisesPage, err := s.catalogService.ListExercises(ctx, filter, page, limit)
	if err != nil {
		logger.Error("getting exercises error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting exercises", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, exercisesPage)
	logger.Info("exercises page provided")
}

func (s *Server) GetFacets(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	facets, err := s.catalogService.GetFacets(ctx)
	if err != nil {
		logger.Error("getting facets error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting filter options", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, facets)
	logger.Info("facets provided")
}

func (s *Server) GetMuscleGroups(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	muscles, err := s.catalogService.MuscleGroups(ctx)
	if err != nil {
		logger.Error("getting muscle groups error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting muscle groups", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"muscle_groups": muscles})
	logger.Info("muscle groups provided")
}

func (s *Server) GetExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id := r.PathValue("id")
	if id == "" {
		logger.Error("get exercise error: empty id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	exercise, err := s.catalogService.GetExercise(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrExerciseNotFound):
			logger.Error("get exercise error: unexist exercise")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "exercise doesn't exist", nil)
		default:
			logger.Error("get exercise error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting exercise", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, exercise)
	logger.Info("exercise provided")
}
