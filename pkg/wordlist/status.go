package wordlist

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"sync/atomic"
	"time"
)

type status struct {
	bytesDownloaded uint64
	linesWritten    uint64
	start           time.Time
	ticker          *time.Ticker
	progress        chan bool
}

func newStatus() *status {
	return &status{
		start:    time.Now(),
		ticker:   time.NewTicker(5 * time.Second),
		progress: make(chan bool),
	}
}

// BeginProgress reports download progress every 5 seconds.
func (s *status) BeginProgress() {
	go func() {
		for {
			select {
			case <-s.progress:
				return
			case <-s.ticker.C:
				log.Info().Msgf("%.2f MiB downloaded, %d entries written", float64(atomic.LoadUint64(&s.bytesDownloaded))/(1024*1024), atomic.LoadUint64(&s.linesWritten))
			}
		}
	}()
}

func (s *status) BytesDownloaded(n uint64) {
	atomic.AddUint64(&s.bytesDownloaded, n)
}

func (s *status) LineWritten() {
	atomic.AddUint64(&s.linesWritten, 1)
}

func (s *status) Done() {
	s.progress <- true
	s.ticker.Stop()

	p := message.NewPrinter(language.English)
	log.Info().Msgf("finished downloading %s entries (%.2f MiB) in %v",
		p.Sprintf("%d", atomic.LoadUint64(&s.linesWritten)),
		float64(atomic.LoadUint64(&s.bytesDownloaded))/(1024*1024),
		time.Since(s.start))
}
