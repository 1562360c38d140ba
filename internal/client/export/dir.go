package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thronos/careerforge/internal/filex"
)

// DirExporter writes each kit into <Root>/<kit id>/.
type DirExporter struct {
	Root string
}

func NewDirExporter(root string) *DirExporter {
	return &DirExporter{Root: root}
}

func (e *DirExporter) Export(ctx context.Context, kitID string, files []File) (string, error) {
	dir, err := filex.EnsureDir(filepath.Join(e.Root, filex.SafeName(kitID)))
	if err != nil {
		return "", fmt.Errorf("export dir: %w", err)
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := os.WriteFile(filepath.Join(dir, f.Name), f.Body, 0o600); err != nil {
			return "", fmt.Errorf("write %s: %w", f.Name, err)
		}
	}
	return dir, nil
}
