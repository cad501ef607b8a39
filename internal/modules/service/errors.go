package service

import "errors"

// Service layer errors for better error handling
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrEventNotFound   = errors.New("event not found")

	ErrInvalidCategory = errors.New("category must be restaurant or activity")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)
