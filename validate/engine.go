package validate

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/c360studio/modelspec/classifier"
	"github.com/c360studio/modelspec/config"
	"github.com/c360studio/modelspec/discovery"
	"github.com/c360studio/modelspec/model"
	"github.com/c360studio/modelspec/registry"
)

// Engine runs one full validation pass over a model tree: discovery,
// shared type registry load, directory-level structural checks, and
// per-file rule checks. The engine never panics or returns an error from
// Run; every failure becomes a diagnostic.
type Engine struct {
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// New creates an engine with the given configuration.
func New(cfg *config.Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, logger: logger, now: time.Now}
}

// WithClock overrides the engine's clock. Used by tests that need a fixed
// reference time for freshness checks.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Run validates root, which may be a directory or a single document.
// The result is always complete: a missing root yields a single
// error-severity diagnostic, and cancellation yields the diagnostics
// collected so far. Diagnostics are stable-sorted by path, severity, and
// message, so identical trees always produce identical results regardless
// of walk or completion order.
func (e *Engine) Run(ctx context.Context, root string) *model.Result {
	result := &model.Result{
		RunID:     uuid.New().String(),
		Root:      root,
		StartedAt: e.now(),
	}

	log := e.logger.With(slog.String("run_id", result.RunID), slog.String("root", root))
	log.Debug("Validation run started")

	walker := discovery.NewWalker(e.cfg.Discovery.ModelsDir, e.cfg.Discovery.Exclude, e.logger)
	set, err := walker.Discover(ctx, root)
	if err != nil {
		if errors.Is(err, discovery.ErrRootNotFound) {
			result.Diagnostics = append(result.Diagnostics,
				model.Errorf(root, "root path does not exist"))
		} else {
			result.Diagnostics = append(result.Diagnostics,
				model.Errorf(root, "discovery failed: %v", err))
		}
		result.CompletedAt = e.now()
		return result
	}

	for _, msg := range set.Errors {
		result.Diagnostics = append(result.Diagnostics, model.Errorf(root, "discovery: %s", msg))
	}
	for _, loose := range set.Loose {
		result.Diagnostics = append(result.Diagnostics,
			model.Infof(loose.Path, "auxiliary document; not validated"))
	}

	// The registry build happens-before any per-file check.
	reg := registry.Load(registryRoot(root), e.cfg.Discovery.SharedDirs, e.cfg.Discovery.Exclude, e.logger)
	for _, c := range reg.Collisions() {
		result.Diagnostics = append(result.Diagnostics, model.Warnf(c.Second,
			"shared definition %q is already defined in %s; the later definition wins", c.Name, c.First))
	}

	structure := NewStructureValidator(e.cfg)
	schema := NewSchemaValidator(e.cfg, reg, e.now)

	// Directory groups are independent once the registry is built, so
	// they validate in parallel. Each group writes only its own slot;
	// the stable sort below makes output deterministic.
	groupDiags := make([][]model.Diagnostic, len(set.Groups))
	groupModels := make([]*model.ModelDefinition, len(set.Groups))

	g, gctx := errgroup.WithContext(ctx)

	// SetLimit(0) makes every Go call block forever; guard against a
	// config that skipped Validate.
	workers := e.cfg.Validation.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i := range set.Groups {
		i := i
		g.Go(func() error {
			groupDiags[i], groupModels[i] = e.validateGroup(gctx, structure, schema, set.Groups[i])
			return nil
		})
	}
	_ = g.Wait()

	for i := range set.Groups {
		result.Diagnostics = append(result.Diagnostics, groupDiags[i]...)
		if groupModels[i] != nil && result.Model == nil {
			result.Model = groupModels[i]
		}
	}

	// Single-file runs return the parsed entity document; directory runs
	// do not.
	if info, err := os.Stat(root); err == nil && info.IsDir() {
		result.Model = nil
	}

	model.SortDiagnostics(result.Diagnostics)
	result.CompletedAt = e.now()

	if ctx.Err() != nil {
		log.Warn("Validation run cancelled; diagnostics are partial")
	}
	log.Debug("Validation run finished",
		slog.Int("diagnostics", len(result.Diagnostics)),
		slog.Int("errors", result.Count(model.SeverityError)),
		slog.Int("warnings", result.Count(model.SeverityWarning)))

	return result
}

// validateGroup runs structural and per-file checks for one directory
// group. Cancellation stops promptly between files and keeps the
// diagnostics collected so far.
func (e *Engine) validateGroup(
	ctx context.Context,
	structure *StructureValidator,
	schema *SchemaValidator,
	group discovery.Group,
) ([]model.Diagnostic, *model.ModelDefinition) {
	diags := structure.ValidateGroup(group)
	var primary *model.ModelDefinition

	for _, f := range group.Files {
		if ctx.Err() != nil {
			return diags, primary
		}

		content, err := os.ReadFile(f.Path)
		if err != nil {
			diags = append(diags, model.Errorf(f.Path, "read failed: %v", err))
			continue
		}

		fileDiags, parsed := schema.ValidateFile(f.Path, content, f.Kind)
		diags = append(diags, fileDiags...)
		if parsed != nil && f.Kind == classifier.KindEntity && primary == nil {
			primary = parsed
		}
	}

	return diags, primary
}

// registryRoot returns the path the shared type registry is loaded from:
// the root itself for directory runs, the containing directory for
// single-file runs.
func registryRoot(root string) string {
	info, err := os.Stat(root)
	if err != nil || info.IsDir() {
		return root
	}
	return filepath.Dir(root)
}
