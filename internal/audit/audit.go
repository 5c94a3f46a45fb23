// Package audit bulk-scores a password wordlist, for gauging how a user
// population or a downloaded list holds up against the strength heuristics.
package audit

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/jfcg/sorty/v2"
	"github.com/rs/zerolog/log"
	"github.com/thinhdanggroup/executor"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pwd-advisor/internal/util"
	"pwd-advisor/pkg/cracktime"
	"pwd-advisor/pkg/strength"
)

// Score bands of the summary.
const (
	weakBelow = 40
	fairBelow = 70
)

type Entry struct {
	Password  string
	Score     int
	Leaked    bool
	CrackTime string
}

type Report struct {
	Entries []Entry
	Weak    int
	Fair    int
	Strong  int
}

type Auditor struct {
	in      *os.File
	threads int

	mu      sync.Mutex
	entries []Entry
}

// New prepares an audit of every line in the input file. threads below 2
// defaults to twice the logical processors.
func New(in *os.File, threads int) *Auditor {
	if threads < 2 {
		threads = runtime.NumCPU() * 2
	}
	return &Auditor{in: in, threads: threads}
}

// Process scores the whole file with a bounded worker pool and returns the
// entries sorted weakest first.
func (a *Auditor) Process() (*Report, error) {
	s := util.Stats()
	defer s()

	lines, err := readLines(a.in)
	if err != nil {
		return nil, err
	}
	// Entries are held in memory for sorting; make sure that is survivable.
	util.CheckRam(uint64(len(lines)), 64)

	pool, err := executor.New(executor.Config{
		ReqPerSeconds: 0,
		QueueSize:     2 * a.threads,
		NumWorkers:    a.threads,
	})
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	log.Info().Msgf("auditing %d passwords with %d threads", len(lines), a.threads)
	a.entries = make([]Entry, 0, len(lines))

	for _, line := range lines {
		if err = pool.Publish(a.scoreOne, line); err != nil {
			log.Panic().Err(err).Msgf("there is a programming error here.")
		}
	}
	pool.Wait()

	a.sortByScore()

	report := &Report{Entries: a.entries}
	for _, e := range a.entries {
		switch {
		case e.Score < weakBelow:
			report.Weak++
		case e.Score < fairBelow:
			report.Fair++
		default:
			report.Strong++
		}
	}

	p := message.NewPrinter(language.English)
	log.Info().Msgf("audit complete: %s weak, %s fair, %s strong",
		p.Sprintf("%d", report.Weak), p.Sprintf("%d", report.Fair), p.Sprintf("%d", report.Strong))
	return report, nil
}

func (a *Auditor) scoreOne(password string) {
	score := strength.Score(password)
	entry := Entry{
		Password:  password,
		Score:     score,
		Leaked:    len(strength.CheckPersonalData(password, strength.Profile{})) > 0,
		CrackTime: cracktime.Estimate(password, score).Regular,
	}

	a.mu.Lock()
	a.entries = append(a.entries, entry)
	a.mu.Unlock()
}

func (a *Auditor) sortByScore() {
	entries := a.entries
	sorty.Sort(len(entries), func(i, k, r, s int) bool {
		if entries[i].Score < entries[k].Score {
			if r != s {
				entries[r], entries[s] = entries[s], entries[r]
			}
			return true
		}
		return false
	})
}

// WriteCSV emits the sorted entries as password,score,leaked,crack_time.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"password", "score", "leaked", "crack_time"}); err != nil {
		return err
	}
	for _, e := range r.Entries {
		record := []string{e.Password, strconv.Itoa(e.Score), strconv.FormatBool(e.Leaked), e.CrackTime}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func readLines(in *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading wordlist: %w", err)
	}
	return lines, nil
}
