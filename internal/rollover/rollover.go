package rollover

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/adrewards/internal/config"
	"github.com/GlebRadaev/adrewards/internal/domain"
)

type Repo interface {
	RolloverCandidates(ctx context.Context, today time.Time, limit uint32) ([]domain.RolloverCandidate, error)
	ApplyRollover(ctx context.Context, accountID int64, today time.Time) error
}

// Service moves the per-account daily counters (ads watched today and the
// streak) to the current local day. Balances are never touched.
type Service struct {
	repo           Repo
	workerPool     WorkerPoolI
	limit          uint32
	updateInterval time.Duration
	now            func() time.Time

	inFlight sync.Map
}

func New(cfg *config.Config, repo Repo) *Service {
	return &Service{
		repo:           repo,
		workerPool:     NewWorkerPool(cfg.RolloverWorkers),
		limit:          cfg.RolloverBatch,
		updateInterval: cfg.RolloverInterval,
		now:            time.Now,
	}
}

// Start runs the rollover loop until ctx is done. It returns after the
// scheduled tasks have finished.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("daily rollover started", zap.Duration("interval", s.updateInterval))
	s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	s.processAccounts(ctx)
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping daily rollover")
			return
		case <-ticker.C:
			s.processAccounts(ctx)
		}
	}
}

func (s *Service) processAccounts(ctx context.Context) {
	today := domain.StartOfDay(s.now())

	candidates, err := s.repo.RolloverCandidates(ctx, today, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch rollover candidates", zap.Error(err))
		return
	}
	if len(candidates) == 0 {
		return
	}

	var g errgroup.Group
	for _, candidate := range candidates {
		accountID := candidate.AccountID
		if _, loaded := s.inFlight.LoadOrStore(accountID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(accountID)
				if ctx.Err() != nil {
					return nil
				}
				if err := s.repo.ApplyRollover(ctx, accountID, today); err != nil {
					if ctx.Err() != nil {
						return nil
					}
					return fmt.Errorf("roll over account %d: %w", accountID, err)
				}
				return nil
			})
			if err != nil {
				s.inFlight.Delete(accountID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error scheduling rollover", zap.Error(err))
		return
	}
	zap.L().Debug("rollover scheduled", zap.Int("accounts", len(candidates)), zap.Time("day", today))
}
