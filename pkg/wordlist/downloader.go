// Package wordlist fetches published common-password lists for offline
// auditing. It downloads plain files over HTTPS; no password or hash ever
// leaves the machine.
package wordlist

import (
	"bufio"
	"crypto/tls"
	"fmt"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"
	"net"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"
)

// Published lists from the SecLists repository, by rough size.
var sources = map[string]string{
	"top-100":    "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/Common-Credentials/10-million-password-list-top-100.txt",
	"top-1000":   "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/Common-Credentials/10-million-password-list-top-1000.txt",
	"top-10000":  "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/Common-Credentials/10-million-password-list-top-10000.txt",
	"top-100000": "https://raw.githubusercontent.com/danielmiessler/SecLists/master/Passwords/Common-Credentials/10-million-password-list-top-100000.txt",
}

// ListNames returns the known list identifiers, sorted.
func ListNames() []string {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Downloader struct {
	fileName string
	writer   *bufio.Writer
	http     *retryablehttp.Client
	stat     *status
}

func NewDownloader(out *os.File) *Downloader {
	return &Downloader{
		fileName: out.Name(),
		writer:   bufio.NewWriter(out),
		http:     initHttpClient(),
	}
}

func initHttpClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	// zerolog does the talking, not retryablehttp's own logger.
	client.Logger = nil
	client.RetryMax = 10

	client.HTTPClient = &http.Client{
		Transport: &http.Transport{
			DisableCompression: false,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS13,
			},
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:          10,
			IdleConnTimeout:       10 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	return client
}

// Fetch downloads the named list and writes one entry per line, skipping
// blanks. Entries are written as published, no local normalization.
func (d *Downloader) Fetch(listName string) error {
	url, ok := sources[listName]
	if !ok {
		return fmt.Errorf("unknown wordlist %q, known lists: %s", listName, strings.Join(ListNames(), ", "))
	}

	log.Info().Msgf("downloading wordlist %s to file %s", listName, d.fileName)
	d.stat = newStatus()
	d.stat.BeginProgress()

	req, err := retryablehttp.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "golang-wordlist-downloader/1.0")

	res, err := d.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			log.Warn().Err(err).Msgf("error closing response body for list %s", listName)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("request [%s] failed with status [%d] %s", url, res.StatusCode, res.Status)
	}

	scanner := bufio.NewScanner(res.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		d.stat.BytesDownloaded(uint64(len(scanner.Bytes()) + 1))
		if line == "" {
			continue
		}
		if _, err := d.writer.WriteString(line + "\n"); err != nil {
			return err
		}
		d.stat.LineWritten()
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := d.writer.Flush(); err != nil {
		return err
	}

	d.stat.Done()
	return nil
}
