package config

import "time"

// SpeedSchedule calculates the move interval from the current score.
type SpeedSchedule struct {
	base  time.Duration
	min   time.Duration
	step  time.Duration
	every int
	fixed bool
}

// NewSpeedSchedule creates a schedule from speed settings.
func NewSpeedSchedule(cfg SpeedConfig) SpeedSchedule {
	every := cfg.EveryPoints
	if every <= 0 {
		every = 1 // Prevent division by zero
	}
	base := time.Duration(cfg.BaseIntervalMS) * time.Millisecond
	floor := time.Duration(cfg.MinIntervalMS) * time.Millisecond
	if floor > base {
		floor = base
	}
	return SpeedSchedule{
		base:  base,
		min:   floor,
		step:  time.Duration(max(cfg.StepMS, 0)) * time.Millisecond,
		every: every,
		fixed: cfg.Fixed,
	}
}

// Interval returns the time between moves at the given score.
// It shortens by one step at every threshold and never drops below the floor.
func (s SpeedSchedule) Interval(score int) time.Duration {
	if s.fixed {
		return s.base
	}
	interval := s.base - time.Duration(s.thresholds(score))*s.step
	if interval < s.min {
		return s.min
	}
	return interval
}

// Level returns the 1-based speed level shown in the HUD.
// It stops increasing once the floor is reached.
func (s SpeedSchedule) Level(score int) int {
	if s.fixed || s.step == 0 {
		return 1
	}
	maxSteps := int((s.base - s.min) / s.step)
	return min(s.thresholds(score), maxSteps) + 1
}

// Base returns the starting interval.
func (s SpeedSchedule) Base() time.Duration {
	return s.base
}

// Floor returns the shortest interval the schedule allows.
func (s SpeedSchedule) Floor() time.Duration {
	if s.fixed {
		return s.base
	}
	return s.min
}

func (s SpeedSchedule) thresholds(score int) int {
	if score <= 0 {
		return 0
	}
	return score / s.every
}
