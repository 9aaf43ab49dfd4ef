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

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type GetWorkoutsResponse struct {
	UserID   string           `json:"uid"`
	Workouts []entity.Workout `json:"workouts"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("registering error: invalid credentials format")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		default:
			logger.Error("registering error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.CreateWorkoutRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create workout error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	workout, err := s.workoutService.CreateWorkout(ctx, uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create workout error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			logger.Error("create workout error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create workout: user doesn't exist", nil)
		default:
			logger.Error("create workout error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating workout", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, workout)
	logger.Info("workout created")
}

func (s *Server) GetWorkouts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get workouts error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	workouts, err := s.workoutService.GetUserWorkouts(ctx, uid)
	if err != nil {
		logger.Error("getting workouts list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting workouts list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetWorkoutsResponse{
		UserID:   uid.String(),
		Workouts: workouts,
	})
	logger.Info("workouts provided")
}

func (s *Server) GetWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get workout error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	workout, err := s.workoutService.GetWorkout(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWorkoutNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("get workout error: unexist workout")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "workout doesn't exist", nil)
		default:
			logger.Error("get workout error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting workout", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, workout)
	logger.Info("workout provided")
}

func (s *Server) UpdateWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update workout error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update workout error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	var req service.UpdateWorkoutRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update workout error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	workout, err := s.workoutService.UpdateWorkout(ctx, id, uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update workout error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrWorkoutNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update workout error: unexist workout")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "workout doesn't exist", nil)
		default:
			logger.Error("update workout error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating workout", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, workout)
	logger.Info("workout updated")
}

func (s *Server) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("workout deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("workout deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.workoutService.DeleteWorkout(ctx, id, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrWorkoutNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("workout deletion error: unexist workout")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "workout doesn't exist", nil)
		default:
			logger.Error("workout deletion error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting workout", nil)
		}
		return
	}
	logger.Info("workout deleted")
}

func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	report, err := s.workoutService.GetProgress(ctx, uid, time.Now())
	if err != nil {
		logger.Error("get progress error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building progress report", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	logger.Info("progress report provided")
}
