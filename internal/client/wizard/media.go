package wizard

import (
	"fmt"
	"io"

	"github.com/thronos/careerforge/internal/common"
	"github.com/thronos/careerforge/internal/netx"
)

const (
	MaxDocumentBytes = 10 << 20
	MaxVideoBytes    = 30 << 20
)

// readDataURL reads at most limit bytes from r into a data URL.
// An empty mime is sniffed.
func readDataURL(r io.Reader, mime string, limit int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > limit {
		return "", common.Invalid(fmt.Sprintf("File is too large (max %d MB).", limit>>20))
	}
	if len(data) == 0 {
		return "", common.Invalid("File is empty.")
	}
	return netx.DataURL(mime, data), nil
}
