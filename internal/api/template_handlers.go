package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/pkg/httputil"
)

type StartFromTemplateRequest struct {
	Date string `json:"date"`
}

func (s *Server) GetTemplates(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"templates": s.templateService.ListTemplates(),
	})
	logger.Info("templates provided")
}

func (s *Server) StartFromTemplate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("start from template error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	templateID := r.PathValue("id")
	if templateID == "" {
		logger.Error("start from template error: empty id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid template id in path value", nil)
		return
	}
	var req StartFromTemplateRequest
	if r.Body != nil {
		defer r.Body.Close()
		// Body is optional, a missing date defaults to today.
		_ = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	workout, err := s.templateService.StartFromTemplate(ctx, uid, templateID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTemplateNotFound):
			logger.Error("start from template error: unexist template")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "template doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("start from template error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		default:
			logger.Error("start from template error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while starting workout", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, workout)
	logger.Info("workout started from template")
}
