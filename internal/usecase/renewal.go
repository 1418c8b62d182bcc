package usecase

import (
	"context"
	"errors"
	"time"

	"locallibrary/internal/entity"
)

// Renewal window: a due date may be pushed out at most four weeks
// from today; the form pre-fills three weeks.
const (
	RenewalWindow   = 28 * 24 * time.Hour
	RenewalProposed = 21 * 24 * time.Hour
)

var (
	ErrRenewalInPast      = errors.New("renewal date is in the past")
	ErrRenewalTooFarAhead = errors.New("renewal date is more than 4 weeks ahead")
)

// ValidateRenewalDate accepts a proposed due date iff it falls between
// today and today+4 weeks inclusive. Pure function of (date, today).
func ValidateRenewalDate(date, today time.Time) error {
	if date.Before(today) {
		return ErrRenewalInPast
	}
	if date.After(today.Add(RenewalWindow)) {
		return ErrRenewalTooFarAhead
	}
	return nil
}

// ProposedRenewalDate is the UI hint offered when the renewal form is
// first displayed. It is not enforced.
func ProposedRenewalDate(today time.Time) time.Time {
	return today.Add(RenewalProposed)
}

// RenewalService runs the two-step renewal workflow against the copy
// repository.
type RenewalService struct {
	instances BookInstanceRepository
	clock     Clocker
}

func NewRenewalService(instances BookInstanceRepository, clock Clocker) *RenewalService {
	return &RenewalService{instances: instances, clock: clock}
}

// Prepare fetches the copy and the suggested new due date. No
// mutation occurs.
func (s *RenewalService) Prepare(ctx context.Context, instanceID string) (entity.BookInstance, time.Time, error) {
	instance, err := s.instances.Get(ctx, instanceID)
	if err != nil {
		return entity.BookInstance{}, time.Time{}, err
	}
	return instance, ProposedRenewalDate(Today(s.clock)), nil
}

// Renew validates the proposed date and, on success, persists it as
// the copy's new due date. On a validation failure nothing is written.
func (s *RenewalService) Renew(ctx context.Context, instanceID string, date time.Time) (entity.BookInstance, error) {
	instance, err := s.instances.Get(ctx, instanceID)
	if err != nil {
		return entity.BookInstance{}, err
	}
	if err := ValidateRenewalDate(date, Today(s.clock)); err != nil {
		return entity.BookInstance{}, err
	}
	if err := s.instances.UpdateDueBack(ctx, instance.ID, date); err != nil {
		return entity.BookInstance{}, err
	}
	instance.DueBack = &date
	return instance, nil
}
