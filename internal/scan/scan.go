package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"draftscan/internal/alias"
	"draftscan/internal/config"
	"draftscan/internal/draft"
	"draftscan/internal/effectcache"
	"draftscan/internal/effects"
	"draftscan/internal/jsontree"
	"draftscan/internal/logging"
	"draftscan/internal/runlog"
	"draftscan/internal/store"
)

// AliasResult summarizes an alias extraction run.
type AliasResult struct {
	RunID       string      `json:"run_id"`
	DraftPath   string      `json:"draft_path"`
	StorePath   string      `json:"store_path"`
	StoreStatus string      `json:"store_status"`
	Stats       alias.Stats `json:"stats"`
}

// EffectsResult summarizes an effect catalog extraction run.
type EffectsResult struct {
	RunID       string        `json:"run_id"`
	DraftPath   string        `json:"draft_path"`
	StorePath   string        `json:"store_path"`
	StoreStatus string        `json:"store_status"`
	Stats       effects.Stats `json:"stats"`
}

// CacheResult summarizes an effect cache scan.
type CacheResult struct {
	RunID     string              `json:"run_id"`
	CacheDir  string              `json:"cache_dir"`
	StorePath string              `json:"store_path"`
	Total     int                 `json:"total"`
	Groups    []effectcache.Group `json:"groups"`
}

// Runner executes extraction runs against the configured stores.
type Runner struct {
	cfg     *config.Config
	logger  *slog.Logger
	history *runlog.Store
}

// NewRunner builds a Runner. history may be nil to skip run recording.
func NewRunner(cfg *config.Config, logger *slog.Logger, history *runlog.Store) *Runner {
	return &Runner{
		cfg:     cfg,
		logger:  logging.NewComponentLogger(logger, "scan"),
		history: history,
	}
}

// Aliases scans draftPath for animation aliases and merges them into the
// alias map.
func (r *Runner) Aliases(ctx context.Context, draftPath string) (AliasResult, error) {
	started := time.Now()
	ctx, runID := r.begin(ctx)

	root, absDraft, err := loadDraft(draftPath)
	if err != nil {
		return AliasResult{}, err
	}

	result := AliasResult{RunID: runID, DraftPath: absDraft, StorePath: r.cfg.AliasPath()}
	err = r.withStore(ctx, result.StorePath, func() error {
		m := alias.Open(result.StorePath, logging.WithContext(ctx, r.logger))
		result.StoreStatus = m.Status().String()
		result.Stats = m.Merge(alias.Records(root))
		return m.Save()
	})
	if err != nil {
		return AliasResult{}, err
	}

	r.record(ctx, runlog.Run{
		ID:        runID,
		Kind:      runlog.KindAlias,
		DraftPath: absDraft,
		StorePath: result.StorePath,
		Added:     result.Stats.Updated,
		Unchanged: result.Stats.Unchanged,
		Total:     result.Stats.Updated + result.Stats.Unchanged,
		StartedAt: started,
	})
	logging.WithContext(ctx, r.logger).Info("alias scan complete",
		logging.String(logging.FieldDraftPath, absDraft),
		logging.String(logging.FieldStorePath, result.StorePath),
		logging.Int("updated", result.Stats.Updated),
		logging.Int("unchanged", result.Stats.Unchanged))
	return result, nil
}

// Effects scans draftPath for video effects and merges them into the catalog
// at out (see config.CatalogPath for resolution).
func (r *Runner) Effects(ctx context.Context, draftPath, out string) (EffectsResult, error) {
	started := time.Now()
	ctx, runID := r.begin(ctx)

	root, absDraft, err := loadDraft(draftPath)
	if err != nil {
		return EffectsResult{}, err
	}

	result := EffectsResult{RunID: runID, DraftPath: absDraft, StorePath: r.cfg.CatalogPath(out)}
	err = r.withStore(ctx, result.StorePath, func() error {
		catalog := effects.Open(result.StorePath, logging.WithContext(ctx, r.logger))
		result.StoreStatus = catalog.Status().String()
		result.Stats = catalog.Merge(effects.Records(root))
		return catalog.Save()
	})
	if err != nil {
		return EffectsResult{}, err
	}

	r.record(ctx, runlog.Run{
		ID:        runID,
		Kind:      runlog.KindEffects,
		DraftPath: absDraft,
		StorePath: result.StorePath,
		Added:     result.Stats.Added,
		Total:     result.Stats.Total,
		StartedAt: started,
	})
	logging.WithContext(ctx, r.logger).Info("effect scan complete",
		logging.String(logging.FieldDraftPath, absDraft),
		logging.String(logging.FieldStorePath, result.StorePath),
		logging.Int("added", result.Stats.Added),
		logging.Int("total", result.Stats.Total))
	return result, nil
}

// EffectCache lists the editor's effect cache at dir and replaces the cache
// listing at out (see config.CacheCatalogPath). An empty dir falls back to
// the configured cache directory.
func (r *Runner) EffectCache(ctx context.Context, dir, out string) (CacheResult, error) {
	started := time.Now()
	ctx, runID := r.begin(ctx)

	if dir == "" {
		dir = r.cfg.EffectCache.Dir
	}
	if dir == "" {
		return CacheResult{}, errors.New("effect cache directory is required (--dir or [effect_cache] dir)")
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return CacheResult{}, fmt.Errorf("resolve effect cache path: %w", err)
	}
	entries, err := effectcache.Scan(absDir, logging.WithContext(ctx, r.logger))
	if err != nil {
		return CacheResult{}, err
	}

	result := CacheResult{
		RunID:     runID,
		CacheDir:  absDir,
		StorePath: r.cfg.CacheCatalogPath(out),
		Total:     len(entries),
		Groups:    effectcache.GroupByType(entries),
	}
	err = r.withStore(ctx, result.StorePath, func() error {
		return effectcache.Save(result.StorePath, entries)
	})
	if err != nil {
		return CacheResult{}, err
	}

	r.record(ctx, runlog.Run{
		ID:        runID,
		Kind:      runlog.KindCache,
		DraftPath: absDir,
		StorePath: result.StorePath,
		Added:     result.Total,
		Total:     result.Total,
		StartedAt: started,
	})
	logging.WithContext(ctx, r.logger).Info("effect cache scan complete",
		logging.String("cache_dir", absDir),
		logging.String(logging.FieldStorePath, result.StorePath),
		logging.Int("total", result.Total),
		logging.Int("types", len(result.Groups)))
	return result, nil
}

func (r *Runner) begin(ctx context.Context) (context.Context, string) {
	runID := runlog.NewRunID()
	return logging.WithRunID(ctx, runID), runID
}

func loadDraft(draftPath string) (*jsontree.Node, string, error) {
	if draftPath == "" {
		return nil, "", errors.New("draft path is required")
	}
	absDraft, err := filepath.Abs(draftPath)
	if err != nil {
		return nil, "", fmt.Errorf("resolve draft path: %w", err)
	}
	root, err := draft.Load(absDraft)
	if err != nil {
		return nil, "", err
	}
	return root, absDraft, nil
}

func (r *Runner) withStore(ctx context.Context, storePath string, fn func() error) error {
	if r.cfg.Store.Lock {
		lock, err := store.Acquire(ctx, storePath)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				r.logger.Debug("lock release failed", logging.Error(err))
			}
		}()
	}
	return fn()
}

func (r *Runner) record(ctx context.Context, run runlog.Run) {
	if r.history == nil {
		return
	}
	run.FinishedAt = time.Now()
	if _, err := r.history.Record(ctx, run); err != nil {
		logging.WarnWithContext(logging.WithContext(ctx, r.logger), "failed to record run history", "history_record_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check [history] path permissions"),
			logging.String(logging.FieldImpact, "this run is missing from `draftscan history`"))
	}
}
