package apiclient

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/huangsam/orderpulse/schema"
)

// DownloadReport streams the static report into w. Reports are never cached.
func (c *Client) DownloadReport(ctx context.Context, w io.Writer) (schema.ReportDownload, error) {
	resp, err := c.get(ctx, DownloadReportPath, nil, msgDownload)
	if err != nil {
		return schema.ReportDownload{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return schema.ReportDownload{}, &RequestError{
			Endpoint: DownloadReportPath,
			Message:  msgDownload,
			Err:      fmt.Errorf("write report: %w", err),
		}
	}
	return schema.ReportDownload{
		FileName:    ReportFileName(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Bytes:       n,
	}, nil
}

// ReportFileName extracts the file name from a Content-Disposition header.
// Directory parts are dropped; a missing name falls back to the default report name.
func ReportFileName(disposition string) string {
	var name string
	if _, params, err := mime.ParseMediaType(disposition); err == nil {
		name = params["filename"]
	} else if _, after, ok := strings.Cut(disposition, "filename="); ok {
		name, _, _ = strings.Cut(after, ";")
		name = strings.ReplaceAll(name, `"`, "")
	}
	name = filepath.Base(strings.TrimSpace(strings.ReplaceAll(name, `\`, "/")))
	if name == "" || name == "." || name == "/" || name == ".." {
		return schema.DefaultReportName
	}
	return name
}
