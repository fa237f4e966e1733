package repository

import "errors"

var ErrInvalidPreferenceData = errors.New("invalid preference data")
