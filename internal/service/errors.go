package service

import "errors"

var (
	// ErrInvalidInput is returned when a required field is blank.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrOwnerNotFound is returned when a task references a user that does not exist.
	ErrOwnerNotFound = errors.New("user does not exist")
	// ErrTaskNotFound is returned when no task has the requested id.
	ErrTaskNotFound = errors.New("task not found")
)
