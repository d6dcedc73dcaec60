package outputs

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"wfcloud/internal/gcs"
	"wfcloud/internal/models"
	"wfcloud/pkg/utils"
)

// Walker recursively downloads every object referenced by an outputs tree.
// Bad leaves are logged and skipped; the walk itself never fails.
type Walker struct {
	Fetcher *gcs.Fetcher
	Log     *slog.Logger

	stats models.PullStats
	items []models.PullItem
}

func (w *Walker) logger() *slog.Logger {
	if w.Log != nil {
		return w.Log
	}
	return slog.Default()
}

// PullAll downloads every output in the document under outputsDir. Each
// top-level output lands under a subdirectory named after the last segment
// of its dotted name.
func (w *Walker) PullAll(ctx context.Context, doc *Document, outputsDir string) *models.PullResult {
	start := time.Now()
	w.stats = models.PullStats{}
	w.items = nil

	keys := make([]string, 0, len(doc.Outputs))
	for k := range doc.Outputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		name := k[strings.LastIndex(k, ".")+1:]
		w.walk(ctx, outputsDir, doc.Outputs[k], name)
	}

	var total int64
	for i, item := range w.items {
		if fi, err := w.Fetcher.FS.Stat(item.Destination); err == nil {
			w.items[i].Size = fi.Size()
			total += fi.Size()
		}
	}

	return &models.PullResult{
		OutputsDir:     outputsDir,
		DryRun:         w.Fetcher.DryRun,
		Stats:          w.stats,
		Items:          w.items,
		TotalSizeBytes: total,
		TotalSizeHuman: utils.FormatBytes(total),
		OperationTime:  utils.FormatTime(start),
		PullDuration:   time.Since(start).String(),
	}
}

// walk dispatches on the node shape. Sequence elements share the directory
// named by the pending subdir; mapping keys each open a new directory level;
// string leaves download next to their siblings under base/subdir.
func (w *Walker) walk(ctx context.Context, base string, n Node, subdir string) {
	fs := w.Fetcher.FS

	switch n.Kind {
	case KindSeq:
		for _, elem := range n.Seq {
			w.walk(ctx, fs.Join(base, subdir), elem, "")
		}

	case KindMap:
		keys := make([]string, 0, len(n.Map))
		for k := range n.Map {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			w.walk(ctx, fs.Join(base, subdir), n.Map[k], k)
		}

	case KindString:
		if !gcs.IsRemote(n.Str) {
			w.logger().Warn("likely not a File output, skipping non-GCS value", "value", n.Str)
			w.stats.Warnings++
			return
		}
		dest := fs.Join(base, subdir, gcs.Basename(n.Str))
		status, err := w.Fetcher.Fetch(ctx, n.Str, dest)
		if err != nil {
			w.logger().Warn("download failed", "src", n.Str, "dest", dest, "error", err)
			w.stats.Errors++
			return
		}
		switch status {
		case gcs.StatusExists:
			w.stats.SkippedExisting++
		default:
			w.stats.Downloaded++
			w.items = append(w.items, models.PullItem{Source: n.Str, Destination: dest})
		}

	case KindNull:
		if subdir != "" {
			w.logger().Info("skipping optional output that wasn't defined", "output", subdir)
		} else {
			w.logger().Info("skipping optional output that wasn't defined")
		}
		w.stats.SkippedOptional++

	case KindScalar:
		w.logger().Error("don't know how to download value", "value", string(n.Raw))
		w.stats.Errors++
	}
}
