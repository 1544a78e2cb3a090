package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DiskHandler writes uploads under a local directory served statically
// at /uploads. File names combine the arrival timestamp with a uuid so
// two uploads in the same millisecond cannot collide.
type DiskHandler struct {
	dir string
}

func NewDiskHandler(dir string) (*DiskHandler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("media: failed to create upload dir: %w", err)
	}
	return &DiskHandler{dir: dir}, nil
}

func (d *DiskHandler) Save(_ context.Context, data []byte, ext string) (string, error) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	if err := os.WriteFile(filepath.Join(d.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("media: failed to write upload: %w", err)
	}

	return "/uploads/" + name, nil
}
