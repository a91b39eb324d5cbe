package workers

import (
	"context"
	"time"

	"github.com/Art-of-Technology/collab-sub012/internal/config"
	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/internal/store"
)

// AuditPruner deletes audit entries older than the retention period. It
// prunes once at start and then on every interval tick.
type AuditPruner struct {
	repo      store.AuditRepository
	retention time.Duration
	interval  time.Duration
	now       func() time.Time

	logger *logger.Logger
}

func NewAuditPruner(repo store.AuditRepository, cfg config.Workers, logger *logger.Logger) *AuditPruner {
	return &AuditPruner{
		repo:      repo,
		retention: cfg.AuditRetention,
		interval:  cfg.AuditPruneInterval,
		now:       time.Now,
		logger:    logger,
	}
}

func (p *AuditPruner) Run(ctx context.Context) {
	if p.retention <= 0 || p.interval <= 0 {
		p.logger.Info().Msg("audit pruning disabled")
		return
	}

	p.Prune(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Prune(ctx)
		}
	}
}

// Prune runs one deletion pass and returns the number of removed entries.
// Failures are logged; the next tick retries.
func (p *AuditPruner) Prune(ctx context.Context) int64 {
	cutoff := p.now().UTC().Add(-p.retention)

	deleted, err := p.repo.DeleteAuditEntriesBefore(ctx, cutoff)
	if err != nil {
		p.logger.Err(err).Time("cutoff", cutoff).Msg("failed to prune audit log")
		return 0
	}

	if deleted > 0 {
		p.logger.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("audit log pruned")
	}
	return deleted
}
