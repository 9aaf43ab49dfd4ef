package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/internal/service"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
	"github.com/dangdinh87/gym-tracker/pkg/httputil"
)

func (s *Server) GetFoods(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	foods, err := s.nutritionService.ListFoods(ctx)
	if err != nil {
		logger.Error("getting foods error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting foods list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"foods": foods})
	logger.Info("foods provided")
}

func (s *Server) LogFood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log food error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.LogFoodRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("log food error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	entry, err := s.nutritionService.LogFood(ctx, uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("log food error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrFoodNotFound):
			logger.Error("log food error: unexist food")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "food doesn't exist", nil)
		default:
			logger.Error("log food error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging food", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("food entry logged")
}

func (s *Server) DeleteFoodEntry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("entry deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("entry deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid entry id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.nutritionService.DeleteEntry(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEntryNotFound):
			logger.Error("entry deletion error: unexist entry")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "food entry doesn't exist", nil)
		default:
			logger.Error("entry deletion error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting entry", nil)
		}
		return
	}
	logger.Info("food entry deleted")
}

func (s *Server) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("daily summary error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format(entity.DateLayout)
	}
	if _, err = time.Parse(entity.DateLayout, date); err != nil {
		logger.Error("daily summary error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	summary, err := s.nutritionService.DailySummary(ctx, uid, date)
	if err != nil {
		logger.Error("daily summary error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building daily summary", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
	logger.Info("daily summary provided")
}

func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get goals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goals, err := s.nutritionService.GetGoals(ctx, uid)
	if err != nil {
		logger.Error("get goals error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting goals", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goals)
	logger.Info("goals provided")
}

func (s *Server) UpdateGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update goals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.GoalsRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update goals error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.nutritionService.UpdateGoals(ctx, uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update goals error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		default:
			logger.Error("update goals error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating goals", nil)
		}
		return
	}
	logger.Info("goals updated")
}
