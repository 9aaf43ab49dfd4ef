package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/dangdinh87/gym-tracker/internal/error_values"
	"github.com/dangdinh87/gym-tracker/pkg/entity"
)

// TemplateService exposes the built-in workout templates and turns them
// into fresh workouts through the workout service.
type TemplateService struct {
	templates []entity.WorkoutTemplate
	workouts  WorkoutServiceI
}

func NewTemplateService(templates []entity.WorkoutTemplate, workouts WorkoutServiceI) *TemplateService {
	if workouts == nil {
		log.Fatal("provided nil workout service")
	}
	return &TemplateService{
		templates: templates,
		workouts:  workouts,
	}
}

func (ts *TemplateService) ListTemplates() []entity.WorkoutTemplate {
	return ts.templates
}

func (ts *TemplateService) StartFromTemplate(ctx context.Context, uid uuid.UUID, templateID, date string) (*entity.Workout, error) {
	var tpl *entity.WorkoutTemplate
	for i := range ts.templates {
		if ts.templates[i].ID == templateID {
			tpl = &ts.templates[i]
			break
		}
	}
	if tpl == nil {
		return nil, errorvalues.ErrTemplateNotFound
	}
	if date == "" {
		date = time.Now().Format(entity.DateLayout)
	}
	req := CreateWorkoutRequest{
		Name:      tpl.Name,
		Date:      date,
		Exercises: make([]WorkoutExerciseInput, 0, len(tpl.Exercises)),
	}
	for _, ex := range tpl.Exercises {
		req.Exercises = append(req.Exercises, WorkoutExerciseInput{
			Name:         ex.Name,
			MuscleGroups: ex.MuscleGroups,
			Notes:        ex.Notes,
		})
	}
	return ts.workouts.CreateWorkout(ctx, uid, &req)
}
