package taxonomy

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/carbocation/pfx"
)

// DefaultBaseURL is the UniProt taxonomy REST endpoint.
const DefaultBaseURL = "https://rest.uniprot.org/taxonomy/"

// httpClient performs requests; tests replace it with a mock transport.
var httpClient = &http.Client{Timeout: 20 * time.Second}

// Client fetches taxonomy entries by organism id.
type Client struct {
	BaseURL string
}

// NewClient returns a client against the public UniProt endpoint.
func NewClient() *Client {
	return &Client{BaseURL: DefaultBaseURL}
}

// Lookup fetches the taxonomy entry for an organism id, retrying on
// transport errors and 429 responses with a linear backoff.
func (c *Client) Lookup(organismID string) (Entry, error) {
	var entry Entry
	if organismID == "" {
		return entry, fmt.Errorf("empty organism id")
	}

	url := fmt.Sprintf("%s%s.json", c.BaseURL, organismID)

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			return entry, pfx.Err(err)
		}
		req.Header.Set("User-Agent", "uniprep/1.0")
		req.Header.Set("Accept", "application/json")

		resp, err := httpClient.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt*300) * time.Millisecond)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			lastErr = fmt.Errorf("uniprot taxonomy returned 429 for %s", organismID)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return entry, fmt.Errorf("uniprot taxonomy returned status %d for %s: %s", resp.StatusCode, organismID, string(body))
		}

		err = json.NewDecoder(resp.Body).Decode(&entry)
		resp.Body.Close()
		if err != nil {
			return entry, pfx.Err(err)
		}

		return entry, nil
	}

	return entry, pfx.Err(lastErr)
}
