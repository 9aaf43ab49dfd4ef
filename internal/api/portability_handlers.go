package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/internal/portability"
	"github.com/dangdinh87/gym-tracker/pkg/httputil"
)

func (s *Server) ExportWorkouts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("export error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*20)
	defer cancel()
	workouts, err := s.workoutService.GetUserWorkouts(ctx, uid)
	if err != nil {
		logger.Error("export error: getting workouts error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting workouts for export", nil)
		return
	}
	switch format {
	case "json":
		data, err := portability.ExportJSON(workouts, time.Now())
		if err != nil {
			logger.Error("export error: encoding error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while encoding export", nil)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", "attachment; filename=workouts.json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=workouts.csv")
		w.WriteHeader(http.StatusOK)
		if err = portability.ExportCSV(w, workouts); err != nil {
			logger.Error("export error: csv writing error", slog.String("error", err.Error()))
			return
		}
	case "xlsx":
		file, err := portability.ExportXLSX(workouts)
		if err != nil {
			logger.Error("export error: building workbook error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building workbook", nil)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename=workouts.xlsx")
		w.WriteHeader(http.StatusOK)
		if err = file.Write(w); err != nil {
			logger.Error("export error: workbook writing error", slog.String("error", err.Error()))
			return
		}
	default:
		logger.Error("export error: unsupported format")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unsupported export format, expected json, csv or xlsx", nil)
		return
	}
	logger.Info("workouts exported", slog.String("format", format))
}

func (s *Server) ImportWorkouts(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("import error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	defer r.Body.Close()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Error("import error: reading body error")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "couldn't read request body", nil)
		return
	}
	result, err := portability.ImportJSON(data, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrBadImportFile):
			logger.Error("import error: invalid file format")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "import file has invalid format", nil)
		default:
			logger.Error("import error: parsing error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while parsing import", nil)
		}
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*20)
	defer cancel()
	imported, err := s.workoutService.ImportWorkouts(ctx, uid, result.Workouts)
	if err != nil {
		logger.Error("import error: storing error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while storing imported workouts", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"imported": imported,
		"skipped":  result.Skipped,
	})
	logger.Info("workouts imported", slog.Int("count", imported))
}
