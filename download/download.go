// Package download fetches the Swiss-Prot database over HTTPS.
package download

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/carbocation/pfx"
)

// DefaultURL is the gzipped Swiss-Prot FASTA of the current UniProt release.
const DefaultURL = "https://ftp.uniprot.org/pub/databases/uniprot/current_release/knowledgebase/complete/uniprot_sprot.fasta.gz"

// httpClient performs requests; tests may replace it. No overall timeout:
// the full database is large and slow mirrors are common.
var httpClient = &http.Client{}

// Fetch downloads url to dest. If dest already exists the download is
// skipped, so re-running the pipeline does not refetch the database. The
// body is streamed to a temp file and renamed into place on success.
func Fetch(url, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		log.Println("Already downloaded", dest)
		return nil
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return pfx.Err(err)
		}
	}

	log.Println("Downloading", url)
	started := time.Now()

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return pfx.Err(err)
	}
	req.Header.Set("User-Agent", "uniprep/1.0")

	resp, err := httpClient.Do(req)
	if err != nil {
		return pfx.Err(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s returned status %d", url, resp.StatusCode)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".partial-*")
	if err != nil {
		return pfx.Err(err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, resp.Body)
	if err != nil {
		tmp.Close()
		return pfx.Err(err)
	}
	if err := tmp.Close(); err != nil {
		return pfx.Err(err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return pfx.Err(err)
	}

	log.Printf("Downloaded %d bytes to %s in %s\n", n, dest, time.Since(started).Round(time.Millisecond))

	return nil
}
