package project

import "errors"

var (
	ErrNotFound      = errors.New("project not found")
	ErrNotActive     = errors.New("project is no longer active")
	ErrAlreadyGraded = errors.New("project has already been graded")
	ErrDuplicateID   = errors.New("a project with this id already exists")
	ErrUnknownStatus = errors.New("unknown project status")
	ErrUnknownAction = errors.New("unknown action")
)
