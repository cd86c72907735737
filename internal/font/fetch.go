package font

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/gitart/internal/model"
)

// DefaultSource is the 6x10 font from the u8g2 project.
const DefaultSource = "https://github.com/olikraus/u8g2/raw/refs/heads/master/tools/font/bdf/6x10.bdf"

// Fetched describes a downloaded font file.
type Fetched struct {
	URL    string
	Path   string
	Cached bool
}

// Fetch downloads a remote font into cacheDir, reusing a cached copy unless refresh is set.
func Fetch(ctx context.Context, rawURL, cacheDir string, refresh bool) (Fetched, error) {
	if cacheDir == "" {
		return Fetched{}, fmt.Errorf("cache directory is required")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return Fetched{}, fmt.Errorf("failed to create font cache dir: %w", err)
	}
	destPath := filepath.Join(cacheDir, cacheName(rawURL))
	if !refresh {
		if _, err := os.Stat(destPath); err == nil {
			return Fetched{URL: rawURL, Path: destPath, Cached: true}, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return Fetched{}, fmt.Errorf("failed to stat cached font: %w", err)
		}
	}

	resp, err := httpRequest(ctx, rawURL)
	if err != nil {
		return Fetched{}, fmt.Errorf("%w: %v", model.ErrFontLoad, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return Fetched{}, fmt.Errorf("%w: failed to download font from %s: %s", model.ErrFontLoad, rawURL, resp.Status)
	}

	tmpFile, err := os.CreateTemp(cacheDir, "font-*.bdf")
	if err != nil {
		return Fetched{}, fmt.Errorf("failed to create temp font: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return Fetched{}, fmt.Errorf("%w: failed to download font: %v", model.ErrFontLoad, err)
	}
	if err := tmpFile.Close(); err != nil {
		return Fetched{}, fmt.Errorf("failed to close temp font: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return Fetched{}, fmt.Errorf("failed to move font into cache: %w", err)
	}
	return Fetched{URL: rawURL, Path: destPath}, nil
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// cacheName prefixes the URL's base name with a short hash of the full URL.
func cacheName(rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))
	prefix := hex.EncodeToString(sum[:])[:12]
	base := "font.bdf"
	if u, err := url.Parse(rawURL); err == nil {
		if b := path.Base(u.Path); b != "" && b != "/" && b != "." {
			base = b
		}
	}
	return prefix + "-" + base
}

func httpRequest(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}
