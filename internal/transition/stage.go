package transition

import (
	"time"

	"github.com/atomicstack/lookbook/internal/logging/events"
)

// DefaultPhaseDuration is the length of each of the exit and enter phases.
const DefaultPhaseDuration = 400 * time.Millisecond

// Phase is the stage animator's position in the exit-before-enter sequence.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseExit
	PhaseEnter
)

func (p Phase) String() string {
	switch p {
	case PhaseExit:
		return "exit"
	case PhaseEnter:
		return "enter"
	default:
		return "idle"
	}
}

// Stage sequences the crossfade of the stage element. Only one element is
// ever displayed: the outgoing key plays its exit to completion and is then
// replaced by the incoming key, which plays its enter.
type Stage struct {
	duration time.Duration
	instant  bool
	ease     func(float64) float64

	displayed string
	target    string
	phase     Phase
	start     time.Time
	from      Pose
	pose      Pose
}

// StageOption configures a Stage.
type StageOption func(*Stage)

// WithPhaseDuration overrides DefaultPhaseDuration.
func WithPhaseDuration(d time.Duration) StageOption {
	return func(s *Stage) {
		if d > 0 {
			s.duration = d
		}
	}
}

// WithInstant makes every retarget complete immediately.
func WithInstant(instant bool) StageOption {
	return func(s *Stage) {
		s.instant = instant
	}
}

// NewStage returns an animator at rest showing key.
func NewStage(key string, opts ...StageOption) *Stage {
	s := &Stage{
		duration:  DefaultPhaseDuration,
		ease:      EaseOut,
		displayed: key,
		target:    key,
		pose:      Rest,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Displayed is the key currently drawn on the stage.
func (s *Stage) Displayed() string { return s.displayed }

// Target is the key the stage is heading to.
func (s *Stage) Target() string { return s.target }

// Pose is the current pose of the displayed element.
func (s *Stage) Pose() Pose { return s.pose }

// Phase reports the current phase.
func (s *Stage) Phase() Phase { return s.phase }

// Animating reports whether Tick still has work to do.
func (s *Stage) Animating() bool { return s.phase != PhaseIdle }

// Retarget points the stage at key. A retarget during an animation replaces
// it: the element on screen leaves from wherever it currently is, and earlier
// targets that never reached the screen are dropped.
func (s *Stage) Retarget(key string, now time.Time) {
	if key == s.target {
		return
	}
	if s.Animating() {
		events.Transition.Supersede(s.displayed, s.target, key)
	}
	s.target = key
	if s.instant {
		s.displayed = key
		s.pose = Rest
		s.phase = PhaseIdle
		return
	}
	s.from = s.pose
	s.start = now
	if key == s.displayed {
		s.phase = PhaseEnter
		return
	}
	events.Transition.Start(s.displayed, key)
	s.phase = PhaseExit
}

// Tick advances the animation to now and reports whether it is still running.
func (s *Stage) Tick(now time.Time) bool {
	if s.phase == PhaseExit {
		t := s.progress(now)
		s.pose = s.from.Lerp(ExitPose, s.ease(t))
		if t < 1 {
			return true
		}
		s.displayed = s.target
		s.phase = PhaseEnter
		s.start = s.start.Add(s.duration)
		s.from = EnterPose
		s.pose = EnterPose
	}
	if s.phase == PhaseEnter {
		t := s.progress(now)
		s.pose = s.from.Lerp(Rest, s.ease(t))
		if t < 1 {
			return true
		}
		s.pose = Rest
		s.phase = PhaseIdle
		events.Transition.Settled(s.displayed)
	}
	return false
}

func (s *Stage) progress(now time.Time) float64 {
	if s.duration <= 0 {
		return 1
	}
	elapsed := now.Sub(s.start)
	if elapsed <= 0 {
		return 0
	}
	t := float64(elapsed) / float64(s.duration)
	if t > 1 {
		return 1
	}
	return t
}
