// Package tiles deals with the external web map tile provider.
package tiles

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/palmwatch/millatlas/httpclientpool"
	"github.com/palmwatch/millatlas/settings"
)

// URL returns the browser-facing tile URL template with the API key
// substituted in.
func URL(config settings.TilesConfig) string {
	return strings.ReplaceAll(config.URLTemplate, "{key}", config.APIKey)
}

// CheckCredential fetches a single tile to verify the configured
// provider and key are usable. A failure here is an external
// dependency problem, callers log it and keep serving.
func CheckCredential(config settings.TilesConfig) error {
	probe := URL(config)
	probe = strings.ReplaceAll(probe, "{z}", "0")
	probe = strings.ReplaceAll(probe, "{x}", "0")
	probe = strings.ReplaceAll(probe, "{y}", "0")

	client := httpclientpool.GetPoolInstance().GetClient()
	req, err := http.NewRequest(http.MethodGet, probe, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "millatlas")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tile provider returned %s for %s", resp.Status, probe)
	}
	return nil
}
