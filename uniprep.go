// Package uniprep holds helpers shared by the uniprep commands, which
// prepare the UniProt/Swiss-Prot protein database for machine-learning use.
package uniprep

import (
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/csimplestring/go-csv/detector"
)

// ExpandHome expands ~ to its proper path, where appropriate.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		path = filepath.Join(usr.HomeDir, (path)[2:])
	}

	return path
}

// DetermineDelimiter returns the single most likely rune that would delimit
// the values in the reader, assuming a CSV-like file.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// OpenFileOrURL reads the full contents behind input, which may be a local
// file path or an http(s) URL.
func OpenFileOrURL(input string) ([]byte, error) {
	var f io.ReadCloser

	if strings.HasPrefix(input, "http") {
		resp, err := http.Get(input)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer resp.Body.Close()

		f = resp.Body
	} else {
		file, err := os.Open(ExpandHome(input))
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer file.Close()

		f = file
	}

	return ioutil.ReadAll(f)
}
