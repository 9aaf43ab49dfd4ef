package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrWorkoutNotFound = errors.New("workout doesn't exist")
	ErrWrongOwner      = errors.New("record belongs to another user")
	ErrOwnerNotFound   = errors.New("record owner doesn't exist")

	ErrExerciseNotFound = errors.New("exercise doesn't exist in catalog")
	ErrFoodNotFound     = errors.New("food doesn't exist in catalog")
	ErrEntryNotFound    = errors.New("food entry doesn't exist")
	ErrGoalsNotFound    = errors.New("nutrition goals are not set")
	ErrTemplateNotFound = errors.New("workout template doesn't exist")

	ErrBadImportFile = errors.New("import file has invalid format")
	ErrValidation    = errors.New("request validation failed")
)
