// Package usecase implements the business logic for the trial feature.
package usecase

import "errors"

// ErrTrialNotFound is returned when no trial record exists for a user.
// Premium users and users who never logged in have no record.
var ErrTrialNotFound = errors.New("trial not found")
