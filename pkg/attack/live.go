package attack

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"pwd-advisor/pkg/strength"
)

// Status of one attack within a live simulation.
type Status string

const (
	StatusWaiting Status = "waiting"
	StatusRunning Status = "running"
	StatusCracked Status = "cracked"
	StatusFailed  Status = "failed"
)

// Progress is the observable state of one attack at a point in time.
type Progress struct {
	Name         string  `json:"name"`
	Status       Status  `json:"status"`
	Percent      float64 `json:"percent"`
	Attempts     int     `json:"attempts"`
	AttemptLimit int     `json:"attemptLimit"`
	Method       string  `json:"method,omitempty"`
}

// Snapshot is emitted on every poll. The final snapshot has Done set and
// carries the overall verdict.
type Snapshot struct {
	Elapsed time.Duration `json:"elapsed"`
	Attacks []Progress    `json:"attacks"`
	Done    bool          `json:"done"`
	Cracked bool          `json:"cracked"`
}

// Defaults of the animation: four polls a second, a hard two minute ceiling
// after which the password is declared secure no matter what.
const (
	defaultPollInterval = 250 * time.Millisecond
	defaultCeiling      = 120 * time.Second
)

// Per-poll random crack chance cap. Weak passwords approach it, strong ones
// approach zero.
const maxCrackChance = 0.05

type liveAttack struct {
	name         string
	attemptLimit int
	baseSeconds  float64

	status   Status
	duration time.Duration
	elapsed  time.Duration
	attempts int
	method   string
}

// Simulation drives the "live attack" animation: three attacks run one after
// another on a poll timer, each probabilistically declaring the password
// cracked. This is presentation glue; it has no bearing on the score, issue
// or suggestion outputs.
type Simulation struct {
	password string
	profile  strength.Profile
	score    int

	rnd     *rand.Rand
	poll    time.Duration
	ceiling time.Duration
	scale   float64

	attacks []*liveAttack
	events  chan Snapshot
	once    sync.Once
	final   Snapshot
}

// Option adjusts simulation timing or randomness, mostly for tests.
type Option func(*Simulation)

// WithRand injects the random source deciding probabilistic cracks.
func WithRand(rnd *rand.Rand) Option {
	return func(s *Simulation) { s.rnd = rnd }
}

// WithPollInterval overrides the 250ms poll timer.
func WithPollInterval(d time.Duration) Option {
	return func(s *Simulation) { s.poll = d }
}

// WithTimeScale multiplies every attack duration and the ceiling, so tests
// can compress minutes of animation into milliseconds.
func WithTimeScale(scale float64) Option {
	return func(s *Simulation) { s.scale = scale }
}

// NewSimulation prepares a simulation for one password. Attack durations
// stretch with the score so stronger passwords visibly resist longer.
func NewSimulation(password string, profile strength.Profile, score int, opts ...Option) *Simulation {
	s := &Simulation{
		password: password,
		profile:  profile,
		score:    score,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		poll:     defaultPollInterval,
		ceiling:  defaultCeiling,
		scale:    1,
		attacks: []*liveAttack{
			{name: "Dictionary Attack", attemptLimit: 100_000, baseSeconds: 10, status: StatusWaiting},
			{name: "Brute Force Attack", attemptLimit: 500_000, baseSeconds: 30, status: StatusWaiting},
			{name: "Rainbow Table Attack", attemptLimit: 300_000, baseSeconds: 20, status: StatusWaiting},
		},
		events: make(chan Snapshot, 64),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, a := range s.attacks {
		secs := a.baseSeconds * float64(score) / 50
		if secs < 5 {
			secs = 5
		}
		a.duration = time.Duration(secs * s.scale * float64(time.Second))
		if a.duration <= 0 {
			a.duration = s.poll
		}
	}
	s.ceiling = time.Duration(float64(s.ceiling) * s.scale)
	if s.ceiling < s.poll {
		s.ceiling = s.poll
	}
	return s
}

// Start launches the simulation. The returned channel receives a snapshot
// per poll and is closed once the simulation concludes; cancelling the
// context stops all pending timers immediately.
func (s *Simulation) Start(ctx context.Context) <-chan Snapshot {
	go s.run(ctx)
	return s.events
}

// Run is the synchronous variant: it drains the event stream and returns the
// final snapshot.
func (s *Simulation) Run(ctx context.Context) Snapshot {
	var last Snapshot
	for snap := range s.Start(ctx) {
		last = snap
	}
	return last
}

func (s *Simulation) run(ctx context.Context) {
	defer close(s.events)

	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	current := 0
	s.attacks[current].status = StatusRunning
	var elapsed time.Duration

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		elapsed += s.poll
		a := s.attacks[current]
		a.elapsed += s.poll

		fraction := float64(a.elapsed) / float64(a.duration)
		if fraction > 1 {
			fraction = 1
		}
		a.attempts = int(fraction * float64(a.attemptLimit))

		if method, ok := s.crackCheck(a.name, fraction); ok {
			a.status = StatusCracked
			a.method = method
			a.attempts = a.attemptLimit
			s.conclude(ctx, elapsed, true)
			return
		}

		if fraction >= 1 {
			a.status = StatusFailed
			current++
			if current == len(s.attacks) {
				s.conclude(ctx, elapsed, false)
				return
			}
			s.attacks[current].status = StatusRunning
		}

		if elapsed >= s.ceiling {
			// Out of time: every attack gave up, call it secure.
			for _, pending := range s.attacks {
				if pending.status == StatusRunning || pending.status == StatusWaiting {
					pending.status = StatusFailed
				}
			}
			s.conclude(ctx, elapsed, false)
			return
		}

		s.emit(ctx, Snapshot{Elapsed: elapsed, Attacks: s.progress()})
	}
}

// crackCheck decides whether the running attack just succeeded. Passwords
// with matching weak patterns are guaranteed to fall once the attack passes
// a tenth of its budget; everything else is left to a capped random chance
// weighted by how weak the score is.
func (s *Simulation) crackCheck(attackName string, fraction float64) (string, bool) {
	if fraction >= 0.1 {
		switch attackName {
		case "Dictionary Attack":
			if strength.IsCommonPassword(s.password) || len(strength.CheckPersonalData(s.password, strength.Profile{})) > 0 {
				return "Found in common password list", true
			}
		case "Brute Force Attack":
			if len(strength.CheckPersonalData(s.password, s.profile)) > 0 {
				return "Guessed from personal data patterns", true
			}
			if singleClass(s.password) {
				return "Exhausted reduced character space", true
			}
		case "Rainbow Table Attack":
			if strength.HasKeyboardWalk(s.password) {
				return "Hash found in precomputed table", true
			}
		}
	}

	chance := float64(100-s.score) / 100 * maxCrackChance
	if chance > maxCrackChance {
		chance = maxCrackChance
	}
	if s.rnd.Float64() < chance {
		return "Matched by random candidate", true
	}
	return "", false
}

func (s *Simulation) conclude(ctx context.Context, elapsed time.Duration, cracked bool) {
	s.final = Snapshot{
		Elapsed: elapsed,
		Attacks: s.progress(),
		Done:    true,
		Cracked: cracked,
	}
	// The final snapshot is the one callers must not miss.
	select {
	case s.events <- s.final:
	case <-ctx.Done():
	}
}

func (s *Simulation) emit(_ context.Context, snap Snapshot) {
	select {
	case s.events <- snap:
	default:
		// Slow consumer, drop the intermediate frame.
	}
}

func (s *Simulation) progress() []Progress {
	out := make([]Progress, 0, len(s.attacks))
	for _, a := range s.attacks {
		percent := float64(a.elapsed) / float64(a.duration) * 100
		if percent > 100 || a.status == StatusCracked || a.status == StatusFailed {
			percent = 100
		}
		if a.status == StatusWaiting {
			percent = 0
		}
		out = append(out, Progress{
			Name:         a.name,
			Status:       a.status,
			Percent:      percent,
			Attempts:     a.attempts,
			AttemptLimit: a.attemptLimit,
			Method:       a.method,
		})
	}
	return out
}

func singleClass(password string) bool {
	if password == "" {
		return false
	}
	onlyDigits, onlyLetters := true, true
	for _, r := range password {
		if r < '0' || r > '9' {
			onlyDigits = false
		}
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			onlyLetters = false
		}
	}
	return onlyDigits || onlyLetters
}
