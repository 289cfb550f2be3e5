package reflex

import (
	"context"
	"fmt"
	"math"
	"reflex/internal/app"
	"reflex/internal/random"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

const (
	DEFAULT_MAX_DELAY_SECONDS = 5.0
	DEFAULT_TOLERANCE_SECONDS = 0.001

	noDelay = -1.0
)

type Options struct {
	// Delays are drawn from [0, MaxDelaySeconds).
	MaxDelaySeconds float64

	// A stop closer than this to the delay expiry is perfect.
	ToleranceSeconds float64
}

func DefaultOptions() Options {
	return Options{
		MaxDelaySeconds:  DEFAULT_MAX_DELAY_SECONDS,
		ToleranceSeconds: DEFAULT_TOLERANCE_SECONDS,
	}
}

// The implementation of app.Game.
//
// The countdown never blocks the caller: StartStop() arms a timer of the
// injected clock and returns. Stop pressed before the timer fires cancels
// the round's context; a timer which fires after that is ignored.
type Session struct {
	clock      clockwork.Clock
	randSource random.Source
	impatience *random.Discrete
	options    Options

	mu          sync.Mutex
	phase       app.Phase
	allowStart  bool
	delay       float64
	startTime   time.Time
	roundID     uuid.UUID
	stopRound   context.CancelFunc
	onCompleted func()

	wg sync.WaitGroup
}

var _ app.Game = (*Session)(nil)

func New(clock clockwork.Clock, randSource random.Source, options Options) (*Session, error) {
	if !(options.MaxDelaySeconds > 0) {
		return nil, fmt.Errorf("max delay should be positive, got %v", options.MaxDelaySeconds)
	}

	if options.ToleranceSeconds < 0 {
		return nil, fmt.Errorf("tolerance shouldn't be negative, got %v", options.ToleranceSeconds)
	}

	impatience, err := random.NewUniformDiscrete(randSource, len(ImpatienceMessages))

	if err != nil {
		return nil, err
	}

	return &Session{
		clock:      clock,
		randSource: randSource,
		impatience: impatience,
		options:    options,
		phase:      app.PhaseIdle,
		delay:      noDelay,
	}, nil
}

func (s *Session) OnCountdownCompleted(f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onCompleted = f
}

func (s *Session) Phase() app.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.phase
}

func (s *Session) AllowStart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.allowStart
}

func (s *Session) CountdownInProgress() bool {
	return s.Phase() == app.PhaseCounting
}

// Returns the current delay in seconds and whether it is meaningful.
func (s *Session) Delay() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.delay, s.allowStart || s.phase != app.PhaseIdle
}

func (s *Session) Randomize() (app.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != app.PhaseIdle {
		return app.Outcome{Kind: app.OutcomeIgnored}, app.ErrRoundInProgress
	}

	delay, err := random.Uniform(s.randSource, 0, s.options.MaxDelaySeconds)

	if err != nil {
		return app.Outcome{Kind: app.OutcomeIgnored}, fmt.Errorf("%w: delay: %w", app.ErrRandomization, err)
	}

	s.delay = delay
	s.allowStart = true

	log.Debug().Float64("delay", delay).Msg("delay randomized")

	return app.Outcome{
		Kind:    app.OutcomeRandomized,
		Message: randomizedMessage(delay),
		Delay:   delay,
	}, nil
}

func (s *Session) StartStop() (app.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case app.PhaseIdle:
		if !s.allowStart {
			return app.Outcome{Kind: app.OutcomeIgnored}, nil
		}

		s.startCountdown()

		return app.Outcome{Kind: app.OutcomeStarted, RoundID: s.roundID}, nil
	case app.PhaseCounting:
		roundID := s.roundID

		log.Debug().Str("round_id", roundID.String()).Msg("countdown interrupted")

		s.resetRound()

		index, err := s.impatience.Get()

		if err != nil {
			return app.Outcome{Kind: app.OutcomeImpatient, RoundID: roundID}, fmt.Errorf("%w: impatience message: %w", app.ErrRandomization, err)
		}

		return app.Outcome{
			Kind:    app.OutcomeImpatient,
			Message: ImpatienceMessages[index],
			RoundID: roundID,
		}, nil
	case app.PhaseCompleted:
		elapsed := s.clock.Since(s.startTime).Seconds()
		difference := elapsed - s.delay
		roundID := s.roundID

		log.Debug().
			Str("round_id", roundID.String()).
			Float64("delay", s.delay).
			Float64("elapsed", elapsed).
			Msg("round finished")

		s.resetRound()

		if math.Abs(difference) < s.options.ToleranceSeconds {
			return app.Outcome{
				Kind:       app.OutcomePerfect,
				Message:    PerfectMessage,
				Difference: difference,
				RoundID:    roundID,
			}, nil
		}

		return app.Outcome{
			Kind:       app.OutcomeDeviation,
			Message:    deviationMessage(difference),
			Difference: difference,
			RoundID:    roundID,
		}, nil
	}

	return app.Outcome{}, fmt.Errorf("unexpected phase %v", s.phase)
}

// Should be called with s.mu locked.
func (s *Session) startCountdown() {
	var ctx context.Context

	ctx, s.stopRound = context.WithCancel(context.Background())

	s.phase = app.PhaseCounting
	s.allowStart = false
	s.roundID = uuid.New()
	s.startTime = s.clock.Now()

	timer := s.clock.NewTimer(time.Duration(s.delay * float64(time.Second)))

	log.Debug().
		Str("round_id", s.roundID.String()).
		Float64("delay", s.delay).
		Msg("countdown started")

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		select {
		case <-timer.Chan():
			s.countdownExpired(ctx)
		case <-ctx.Done():
			timer.Stop()
		}
	}()
}

func (s *Session) countdownExpired(ctx context.Context) {
	s.mu.Lock()

	//ctx.Err() == nil check is important: Stop could be pressed
	//in the same moment with the timer expiration.
	if ctx.Err() != nil || s.phase != app.PhaseCounting {
		s.mu.Unlock()

		return
	}

	s.phase = app.PhaseCompleted

	onCompleted := s.onCompleted

	log.Debug().Str("round_id", s.roundID.String()).Msg("countdown completed")

	s.mu.Unlock()

	if onCompleted != nil {
		onCompleted()
	}
}

// Should be called with s.mu locked.
func (s *Session) resetRound() {
	if s.stopRound != nil {
		s.stopRound()

		s.stopRound = nil
	}

	s.phase = app.PhaseIdle
	s.allowStart = false
}

// Cancels the running countdown (if any) and waits for its timer goroutine.
func (s *Session) Close() {
	s.mu.Lock()

	if s.stopRound != nil {
		s.stopRound()
	}

	s.mu.Unlock()

	s.wg.Wait()
}
