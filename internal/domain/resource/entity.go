package resource

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrEmptyUnitName       = errors.New("unit name cannot be empty")
	ErrSelfParent          = errors.New("unit cannot be its own parent")
)

const (
	MaxResourceNameLength = 255
)

// Resource is a bookable facility. Its parts are Units arranged as a forest.
type Resource struct {
	id   uuid.UUID
	name string
}

func NewResource(id uuid.UUID, name string) (*Resource, error) {
	if err := validateName(name, ErrEmptyResourceName); err != nil {
		return nil, err
	}

	return &Resource{
		id:   id,
		name: strings.TrimSpace(name),
	}, nil
}

func (r *Resource) ID() uuid.UUID { return r.id }
func (r *Resource) Name() string  { return r.name }

// Unit is one hierarchical sub-part of a Resource. A nil ParentID marks a root part.
type Unit struct {
	ID                     uuid.UUID
	Name                   string
	ParentID               *uuid.UUID
	AllowsWholeUnitBooking bool
}

func NewUnit(id uuid.UUID, name string, parentID *uuid.UUID, allowsWhole bool) (Unit, error) {
	if err := validateName(name, ErrEmptyUnitName); err != nil {
		return Unit{}, err
	}
	if parentID != nil && *parentID == id {
		return Unit{}, ErrSelfParent
	}

	return Unit{
		ID:                     id,
		Name:                   strings.TrimSpace(name),
		ParentID:               parentID,
		AllowsWholeUnitBooking: allowsWhole,
	}, nil
}

func validateName(name string, emptyErr error) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return emptyErr
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}
