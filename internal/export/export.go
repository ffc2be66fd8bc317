package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/felixbrock/hellopage/internal/app"
	"github.com/felixbrock/hellopage/internal/asset"
	"github.com/felixbrock/hellopage/internal/domain"
)

// Page renders the full home document.
func Page(ctx context.Context, builder app.ComponentBuilder) ([]byte, error) {
	page := domain.HomePage()

	var buf bytes.Buffer
	err := builder.Document(page, builder.Home(page)).Render(ctx, &buf)
	if err != nil {
		return nil, fmt.Errorf("render home page: %w", err)
	}

	return buf.Bytes(), nil
}

// Export writes index.html and the public files into dir.
func Export(ctx context.Context, dir string, builder app.ComponentBuilder) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	content, err := Page(ctx, builder)
	if err != nil {
		return err
	}

	err = os.WriteFile(filepath.Join(dir, "index.html"), content, 0644)
	if err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	public := asset.Public()
	return fs.WalkDir(public, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		target := filepath.Join(dir, filepath.FromSlash(name))
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}

		data, err := fs.ReadFile(public, name)
		if err != nil {
			return fmt.Errorf("read public file %s: %w", name, err)
		}

		err = os.WriteFile(target, data, 0644)
		if err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}

		slog.Debug(fmt.Sprintf("Exported %s", name))
		return nil
	})
}
