package service

import "errors"

// Business-rule failures surfaced to the HTTP layer. Handlers match these
// with errors.Is to pick status codes; the messages are the response
// error strings.
var (
	ErrUserNotFound    = errors.New("User not found")
	ErrPostNotFound    = errors.New("Post not found")
	ErrHashtagNotFound = errors.New("Hashtag not found")
	ErrUsernameTaken   = errors.New("Username already exists")
	ErrEmailTaken      = errors.New("Email already exists")
	ErrInvalidPassword = errors.New("Invalid password")
)
