package internal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

func backupDir(ctx context.Context, src, dest string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "app.backup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("dest", dest))

	absSrc, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return err
	}
	if strings.HasPrefix(absDest, absSrc+string(filepath.Separator)) {
		return fmt.Errorf("backup %s must be outside of the data dir %s", dest, src)
	}

	if err := pkg.EnsureDir(filepath.Dir(absDest)); err != nil {
		return err
	}

	f, err := os.Create(absDest)
	if err != nil {
		return fmt.Errorf("create backup file: %w", err)
	}
	if err := pkg.Compress(absSrc, f); err != nil {
		f.Close()
		os.Remove(absDest)
		return fmt.Errorf("compress %s: %w", src, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close backup file: %w", err)
	}

	log.Infof("data dir %s backed up to %s", src, dest)
	return nil
}
