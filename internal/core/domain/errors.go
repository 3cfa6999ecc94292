package domain

import "errors"

var ErrMissingFields = errors.New("email and password are required")
var ErrInvalidEmail = errors.New("invalid email format")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("unrecognized role")
var ErrConnection = errors.New("authentication backend unreachable")
