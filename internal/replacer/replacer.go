package replacer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"docpatch/internal/archive"
	"docpatch/internal/catalog"
	"docpatch/internal/config"
	"docpatch/internal/fileutil"
	"docpatch/internal/imaging"
	"docpatch/internal/journal"
	"docpatch/internal/logging"
	"docpatch/internal/order"
	"docpatch/internal/patch"
)

// ErrUnsupportedDocument marks a document whose format the patcher cannot
// rewrite.
var ErrUnsupportedDocument = errors.New("unsupported document format")

// ErrBatchLocked marks an output root already claimed by another batch.
var ErrBatchLocked = errors.New("another batch is already running against this output directory")

// Outcome classifies a processed document.
type Outcome string

const (
	OutcomeSucceeded   Outcome = "succeeded"
	OutcomeFailed      Outcome = "failed"
	OutcomeUnsupported Outcome = "unsupported"
)

// DocumentResult is one document's outcome within a batch.
type DocumentResult struct {
	DocumentPath string
	Outcome      Outcome
	Detail       string
	OutputPath   string
	Replaced     int
	Skipped      int
}

// Summary is the final accounting of a batch run.
type Summary struct {
	RunID       string
	OutputDir   string
	Results     []DocumentResult
	Succeeded   int
	Failed      int
	Unsupported int
}

// Replacer executes batches against one configuration.
type Replacer struct {
	cfg        *config.Config
	logger     *slog.Logger
	journal    *journal.Store
	normalizer imaging.Normalizer
}

// New constructs a Replacer. The journal store may be nil to disable
// outcome recording.
func New(cfg *config.Config, logger *slog.Logger, store *journal.Store) *Replacer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Replacer{
		cfg:        cfg,
		logger:     logger,
		journal:    store,
		normalizer: imaging.New(cfg.Replace.JPEGQuality),
	}
}

// Run processes every instruction in sequence and always returns a
// complete summary; per-document failures are recorded, not propagated.
// The returned error covers only batch-level setup (lock, output dir).
func (r *Replacer) Run(ctx context.Context, orderPath string, instructions []order.Instruction) (*Summary, error) {
	if err := os.MkdirAll(r.cfg.Paths.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output root: %w", err)
	}

	lock := flock.New(filepath.Join(r.cfg.Paths.OutputDir, ".docpatch.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire batch lock: %w", err)
	}
	if !locked {
		return nil, ErrBatchLocked
	}
	defer func() { _ = lock.Unlock() }()

	outputDir := filepath.Join(r.cfg.Paths.OutputDir, "replaced_"+time.Now().Format("20060102_150405"))
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create run output directory: %w", err)
	}

	summary := &Summary{OutputDir: outputDir}
	if r.journal != nil {
		runID, err := r.journal.BeginRun(ctx, orderPath, outputDir)
		if err != nil {
			r.logger.Warn("journal unavailable, continuing without it", logging.Error(err))
		} else {
			summary.RunID = runID
		}
	}

	for _, inst := range instructions {
		if err := ctx.Err(); err != nil {
			r.finishRun(ctx, summary)
			return summary, err
		}
		result := r.processDocument(inst, outputDir)
		summary.Results = append(summary.Results, result)
		switch result.Outcome {
		case OutcomeSucceeded:
			summary.Succeeded++
		case OutcomeUnsupported:
			summary.Unsupported++
		default:
			summary.Failed++
		}
		r.logResult(result)
		r.recordResult(ctx, summary.RunID, result)
	}

	r.finishRun(ctx, summary)
	return summary, nil
}

func (r *Replacer) finishRun(ctx context.Context, summary *Summary) {
	if r.journal == nil || summary.RunID == "" {
		return
	}
	// Stamp the run even when the batch context is gone.
	if ctx.Err() != nil {
		ctx = context.Background()
	}
	if err := r.journal.FinishRun(ctx, summary.RunID, summary.Succeeded, summary.Failed, summary.Unsupported); err != nil {
		r.logger.Warn("journal finish failed", logging.Error(err))
	}
}

func (r *Replacer) processDocument(inst order.Instruction, outputDir string) DocumentResult {
	result := DocumentResult{DocumentPath: inst.DocumentPath}

	switch strings.ToLower(filepath.Ext(inst.DocumentPath)) {
	case ".docx":
		return r.patchWordPackage(inst, outputDir)
	case ".pdf":
		return r.passThroughPDF(inst, outputDir)
	default:
		result.Outcome = OutcomeFailed
		result.Detail = fmt.Sprintf("%v: %s", ErrUnsupportedDocument, filepath.Ext(inst.DocumentPath))
		return result
	}
}

func (r *Replacer) patchWordPackage(inst order.Instruction, outputDir string) DocumentResult {
	result := DocumentResult{DocumentPath: inst.DocumentPath}

	container, err := archive.Open(inst.DocumentPath)
	if err != nil {
		result.Outcome = OutcomeFailed
		result.Detail = err.Error()
		return result
	}
	defer container.Close()

	cat := catalog.Build(container, r.cfg.Replace.MediaPrefix)
	if inst.CatalogPin != "" {
		if err := cat.VerifyFingerprint(inst.CatalogPin); err != nil {
			result.Outcome = OutcomeFailed
			result.Detail = err.Error()
			return result
		}
	}

	targets, skips := patch.Resolve(inst, cat)
	for _, skip := range skips {
		r.logger.Warn("target skipped",
			logging.String("document", inst.DocumentPath),
			logging.String("reference", skip.Ref.String()),
			logging.Error(skip.Err))
	}
	result.Skipped = len(skips)

	payloads := make(map[string][]byte, len(targets))
	for _, target := range targets {
		data, err := r.normalizer.Normalize(target.SourcePath, path.Ext(target.EntryPath))
		if err != nil {
			r.logger.Warn("target skipped",
				logging.String("document", inst.DocumentPath),
				logging.String("reference", target.Ref.String()),
				logging.Error(err))
			result.Skipped++
			continue
		}
		payloads[target.EntryPath] = data
	}
	result.Replaced = len(payloads)

	outputPath := uniqueOutputPath(outputDir, filepath.Base(inst.DocumentPath))
	if err := patch.Apply(container, payloads, outputPath); err != nil {
		result.Outcome = OutcomeFailed
		result.Detail = err.Error()
		return result
	}

	result.Outcome = OutcomeSucceeded
	result.OutputPath = outputPath
	return result
}

// passThroughPDF handles the unsupported PDF case: the patch request is
// reported, and the original file is copied into the run output unchanged.
func (r *Replacer) passThroughPDF(inst order.Instruction, outputDir string) DocumentResult {
	result := DocumentResult{DocumentPath: inst.DocumentPath}

	if _, err := os.Stat(inst.DocumentPath); err != nil {
		result.Outcome = OutcomeFailed
		result.Detail = fmt.Sprintf("%v: %s", archive.ErrNotFound, inst.DocumentPath)
		return result
	}

	outputPath := uniqueOutputPath(outputDir, filepath.Base(inst.DocumentPath))
	if err := fileutil.CopyFile(inst.DocumentPath, outputPath); err != nil {
		result.Outcome = OutcomeFailed
		result.Detail = fmt.Sprintf("copy pdf: %v", err)
		return result
	}

	result.Outcome = OutcomeUnsupported
	result.Detail = "pdf patching unsupported; copied unchanged"
	result.OutputPath = outputPath
	return result
}

func (r *Replacer) logResult(result DocumentResult) {
	attrs := []any{
		logging.String("document", result.DocumentPath),
		logging.String("outcome", string(result.Outcome)),
	}
	if result.OutputPath != "" {
		attrs = append(attrs, logging.String("output", result.OutputPath))
	}
	if result.Detail != "" {
		attrs = append(attrs, logging.String("detail", result.Detail))
	}
	switch result.Outcome {
	case OutcomeSucceeded:
		attrs = append(attrs,
			logging.Int("replaced", result.Replaced),
			logging.Int("skipped", result.Skipped))
		r.logger.Info("document patched", attrs...)
	case OutcomeUnsupported:
		r.logger.Info("document passed through", attrs...)
	default:
		r.logger.Error("document failed", attrs...)
	}
}

func (r *Replacer) recordResult(ctx context.Context, runID string, result DocumentResult) {
	if r.journal == nil || runID == "" {
		return
	}
	err := r.journal.RecordDocument(ctx, journal.Document{
		RunID:        runID,
		DocumentPath: result.DocumentPath,
		Outcome:      string(result.Outcome),
		Detail:       result.Detail,
		OutputPath:   result.OutputPath,
	})
	if err != nil {
		r.logger.Warn("journal record failed", logging.Error(err))
	}
}

// uniqueOutputPath keeps distinct documents with the same base filename
// from clobbering each other within one run.
func uniqueOutputPath(dir, base string) string {
	candidate := filepath.Join(dir, base)
	if _, err := os.Stat(candidate); os.IsNotExist(err) {
		return candidate
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for i := 1; ; i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
