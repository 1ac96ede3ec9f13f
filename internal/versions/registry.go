package versions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type packageManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// FetchLatest asks the registry for the version tagged "latest" of pkg.
func (c *Checker) FetchLatest(ctx context.Context, pkg string) (string, error) {
	endpoint := strings.TrimRight(c.registry, "/") + "/" + url.PathEscape(pkg) + "/latest"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "luban-cli")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", pkg, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("package %s not found on %s", pkg, c.registry)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("registry returned status %d for %s", resp.StatusCode, pkg)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	var m packageManifest
	if err := json.Unmarshal(body, &m); err != nil {
		return "", fmt.Errorf("parsing registry response: %w", err)
	}
	if !Valid(m.Version) {
		return "", fmt.Errorf("registry returned invalid version %q for %s", m.Version, pkg)
	}
	return m.Version, nil
}
