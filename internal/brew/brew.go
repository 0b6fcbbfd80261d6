package brew

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/teamcutter/brewer/internal/domain"
)

const (
	defaultPath           = "brew"
	defaultExecutablesURL = "https://raw.githubusercontent.com/Homebrew/homebrew-command-not-found/master/executables.txt"
	defaultAnalyticsURL   = "https://formulae.brew.sh/api/analytics/install/30d.json"

	jsonFlag = "--json=v2"
)

func defaultPrefix() string {
	switch runtime.GOOS {
	case "darwin":
		if runtime.GOARCH == "arm64" {
			return "/opt/homebrew"
		}
		return "/usr/local"
	default:
		return "/home/linuxbrew/.linuxbrew"
	}
}

// Config selects which brew installation and metadata feeds to talk
// to. Zero fields fall back to per-OS defaults.
type Config struct {
	Path           string
	Prefix         string
	ExecutablesURL string
	AnalyticsURL   string
}

// Brew shells out to the local brew binary and reads its prefix and
// remote metadata feeds. It implements domain.Brew.
type Brew struct {
	path           string
	prefix         string
	executablesURL string
	analyticsURL   string
	client         *http.Client
}

func New(cfg Config) *Brew {
	if cfg.Path == "" {
		cfg.Path = defaultPath
	}
	if cfg.Prefix == "" {
		cfg.Prefix = defaultPrefix()
	}
	if cfg.ExecutablesURL == "" {
		cfg.ExecutablesURL = defaultExecutablesURL
	}
	if cfg.AnalyticsURL == "" {
		cfg.AnalyticsURL = defaultAnalyticsURL
	}

	return &Brew{
		path:           cfg.Path,
		prefix:         cfg.Prefix,
		executablesURL: cfg.ExecutablesURL,
		analyticsURL:   cfg.AnalyticsURL,
		client:         &http.Client{Timeout: 5 * time.Minute},
	}
}

// Catalog asks brew to describe every formula and cask it knows
// about. This evaluates the full tap and takes a while.
func (b *Brew) Catalog(ctx context.Context) (*domain.Catalog, error) {
	cmd := exec.CommandContext(ctx, b.path, "info", "--eval-all", jsonFlag)

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("brew info: %w: %s", err, bytes.TrimSpace(exitErr.Stderr))
		}
		return nil, fmt.Errorf("brew info: %w", err)
	}

	catalog, err := decodeCatalog(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("decoding brew info output: %w", err)
	}

	return catalog, nil
}

func (b *Brew) Install(ctx context.Context, keg domain.Keg) error {
	return b.run(ctx, kegArgs("install", keg))
}

func (b *Brew) Uninstall(ctx context.Context, keg domain.Keg) error {
	return b.run(ctx, kegArgs("uninstall", keg))
}

func kegArgs(action string, keg domain.Keg) []string {
	switch k := keg.(type) {
	case domain.Formula:
		return []string{action, k.Name}
	case domain.Cask:
		return []string{action, "--cask", k.Token}
	default:
		panic(fmt.Sprintf("unknown keg variant %T", keg))
	}
}

func (b *Brew) run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, b.path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("brew %s: %w", args[0], err)
	}
	return nil
}

// fetch is the shared HTTP path for the remote metadata feeds.
func (b *Brew) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "brewer")

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: unexpected status: %d", url, resp.StatusCode)
	}

	return resp.Body, nil
}
