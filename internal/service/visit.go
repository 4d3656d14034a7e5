package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"strconv"

	"career-passport/internal/domain"
	"career-passport/internal/logger"
	"career-passport/internal/storage"

	"go.uber.org/zap"
)

// Visit counters start at a random value in [visitSeedMin, visitSeedMin+visitSeedSpan).
const (
	visitSeedMin  = 500
	visitSeedSpan = 1000
)

// VisitService keeps the home page visit counter.
type VisitService interface {
	// RecordVisit counts one launch and returns the new total.
	RecordVisit(ctx context.Context) (int, error)
}

type visitService struct {
	store domain.KeyValueStore
	seed  func() int
}

func NewVisitService(store domain.KeyValueStore) VisitService {
	return &visitService{
		store: store,
		seed:  func() int { return visitSeedMin + rand.IntN(visitSeedSpan) },
	}
}

func (s *visitService) RecordVisit(ctx context.Context) (int, error) {
	count := 0
	raw, err := s.store.Get(ctx, storage.VisitCounterKey)
	switch {
	case errors.Is(err, domain.ErrKeyNotFound):
		count = s.seed()
	case err != nil:
		return 0, domain.NewStorageError("failed to read visit counter", err)
	default:
		if count, err = strconv.Atoi(raw); err != nil {
			logger.Get().Warn("Visit counter is not a number, reseeding", zap.String("value", raw))
			count = s.seed()
		}
	}

	count++
	if err := s.store.Set(ctx, storage.VisitCounterKey, strconv.Itoa(count)); err != nil {
		return 0, domain.NewStorageError("failed to save visit counter", err)
	}
	return count, nil
}
