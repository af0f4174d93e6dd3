package car

import (
	"context"
	"errors"

	"github.com/Fahadd2/GearUp/model"
	carrepo "github.com/Fahadd2/GearUp/repository/car"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrNoFields ErrCode = "NO_FIELDS"
	ErrBadValue ErrCode = "BAD_VALUE"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// UpdateFields = repository shape
type UpdateFields = carrepo.UpdateFields

type Repo interface {
	List(ctx context.Context, f model.CarFilter) ([]model.Car, error)
	Exists(ctx context.Context, carID string) (bool, error)
	Update(ctx context.Context, carID string, f UpdateFields) error
}

type Service interface {
	List(ctx context.Context, f model.CarFilter) ([]model.Car, error)
	Update(ctx context.Context, carID string, f UpdateFields) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context, f model.CarFilter) ([]model.Car, error) {
	return s.r.List(ctx, f)
}

func (s *service) Update(ctx context.Context, carID string, f UpdateFields) error {
	if f.Empty() {
		return makeErr(ErrNoFields)
	}
	if f.Status != nil && !validCarStatus(*f.Status) {
		return makeErr(ErrBadValue)
	}
	exists, err := s.r.Exists(ctx, carID)
	if err != nil {
		return err
	}
	if !exists {
		return makeErr(ErrNotFound)
	}
	return s.r.Update(ctx, carID, f)
}

func validCarStatus(s string) bool {
	switch model.CarStatus(s) {
	case model.CarAvailable, model.CarReserved, model.CarRented, model.CarMaintenance:
		return true
	}
	return false
}
