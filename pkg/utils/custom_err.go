package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrSessionNotFound     = errors.New("session not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrDatabaseError       = errors.New("database error")
	ErrItineraryGeneration = errors.New("an error occurred while generating the itinerary")
	ErrFollowUpProcessing  = errors.New("an error occurred while processing the follow-up request")
	ErrEmptyCompletion     = errors.New("model returned no choices")
	ErrNoItinerary         = errors.New("no itinerary to export")
)
