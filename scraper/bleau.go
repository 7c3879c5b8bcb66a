// backend/scraper/bleau.go
package scraper

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/Thimm/bleau-backend/utils"
)

// BoulderPageURL builds the bleau.info page address for an area and boulder
// identifier, e.g. https://bleau.info/cuvier/la-marie-rose.html.
func BoulderPageURL(baseURL, areaName, bleauInfoID string) string {
	return fmt.Sprintf("%s/%s/%s.html", baseURL, utils.NormalizeAreaName(areaName), bleauInfoID)
}

// FetchBoulderPage downloads the boulder page markup. The request carries a
// desktop browser user agent; bleau.info has been observed to serve stripped
// pages to other agents. A non-2xx response is an error, the caller decides
// how to degrade.
func FetchBoulderPage(ctx context.Context, client *http.Client, userAgent, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get URL %s: %w", pageURL, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("failed to get URL %s: status code %d", pageURL, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body of %s: %w", pageURL, err)
	}

	log.Printf("Scraper: Fetched %s (%d bytes)\n", pageURL, len(body))
	return string(body), nil
}
