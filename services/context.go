package services

import (
	"errors"
	"time"

	"blogicum/models"

	"gorm.io/gorm"
)

// RequestContext identifies who is asking and when. UserID is zero for
// anonymous requests.
type RequestContext struct {
	UserID uint
	Now    time.Time
}

func (rc RequestContext) IsAuthenticated() bool {
	return rc.UserID != 0
}

func (rc RequestContext) requireUser() error {
	if !rc.IsAuthenticated() {
		return models.ErrorUnauthorized{Message: "authentication required"}
	}
	return nil
}

// StructValidator checks validate tags on request forms.
type StructValidator interface {
	ValidateStruct(s interface{}) error
}

func notFoundOr(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrorNotFound{Resource: resource}
	}
	return err
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
