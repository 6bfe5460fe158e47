package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/orderpulse/internal/contract"
	"github.com/huangsam/orderpulse/internal/logger"
	"github.com/huangsam/orderpulse/schema"
	"go.uber.org/zap"
)

// DownloadReport saves the static report to cfg.OutputFile, or to the file
// name announced by the service inside dir when no output file is set.
// The body is written to a temporary file first so a failed download never
// leaves a partial report behind.
func DownloadReport(ctx context.Context, cfg *contract.Config, client contract.AnalyticsClient, dir string) (schema.ReportDownload, error) {
	targetDir := dir
	if cfg.OutputFile != "" {
		targetDir = filepath.Dir(cfg.OutputFile)
	}
	tmp, err := os.CreateTemp(targetDir, ".orderpulse-report-*")
	if err != nil {
		return schema.ReportDownload{}, fmt.Errorf("failed to create temporary report file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }() // no-op after a successful rename

	download, err := client.DownloadReport(ctx, tmp)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to write report: %w", closeErr)
	}
	if err != nil {
		return schema.ReportDownload{}, err
	}

	dest := cfg.OutputFile
	if dest == "" {
		dest = filepath.Join(dir, download.FileName)
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		return schema.ReportDownload{}, fmt.Errorf("failed to save report: %w", err)
	}
	download.Path = dest
	if download.FileName == "" {
		download.FileName = filepath.Base(dest)
	}
	logger.WithContext(ctx).Info("report saved", zap.String("path", dest), zap.Int64("bytes", download.Bytes))
	return download, nil
}
