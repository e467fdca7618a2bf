package probe

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"video-metadata-service/internal/core/ports"
)

type ffprobeAdapter struct{}

func NewFFprobeAdapter() ports.MetadataProbe {
	return &ffprobeAdapter{}
}

// Duration shells out to ffprobe and parses the container duration from
// its format section.
func (p *ffprobeAdapter) Duration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return 0, fmt.Errorf("ffprobe error: %w, output: %s", err, stderr.String())
	}

	raw := strings.TrimSpace(stdout.String())
	duration, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected ffprobe output %q: %w", raw, err)
	}
	if duration < 0 {
		return 0, fmt.Errorf("negative duration %f for %s", duration, path)
	}
	return duration, nil
}
