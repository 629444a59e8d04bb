package orchestrator

import "time"

// Timing holds every delay a room schedules.
type Timing struct {
	Tick            time.Duration `yaml:"tick"`
	CountdownTicks  int           `yaml:"countdown_ticks"`
	SettlementDelay time.Duration `yaml:"settlement_delay"`
	SoloStartDelay  time.Duration `yaml:"solo_start_delay"`

	// AI waves after a player is presented; competitive tiers get the extra ones
	AIWaves          []time.Duration `yaml:"ai_waves"`
	CompetitiveWaves []time.Duration `yaml:"competitive_waves"`

	// Seconds remaining at which competitive players re-trigger the AI
	AICheckpoints     []int         `yaml:"ai_checkpoints"`
	AICheckpointDelay time.Duration `yaml:"ai_checkpoint_delay"`

	// Decision delay is i*AIStagger + U(0, AIJitter) + AIMinDelay
	AIStagger  time.Duration `yaml:"ai_stagger"`
	AIJitter   time.Duration `yaml:"ai_jitter"`
	AIMinDelay time.Duration `yaml:"ai_min_delay"`
}

// DefaultTiming returns the pacing used in live rooms.
func DefaultTiming() Timing {
	return Timing{
		Tick:              time.Second,
		CountdownTicks:    10,
		SettlementDelay:   2500 * time.Millisecond,
		SoloStartDelay:    2 * time.Second,
		AIWaves:           []time.Duration{1500 * time.Millisecond},
		CompetitiveWaves:  []time.Duration{4 * time.Second, 7 * time.Second},
		AICheckpoints:     []int{7, 4},
		AICheckpointDelay: 200 * time.Millisecond,
		AIStagger:         800 * time.Millisecond,
		AIJitter:          1200 * time.Millisecond,
		AIMinDelay:        500 * time.Millisecond,
	}
}

// Window is the full length of one bid window.
func (t Timing) Window() time.Duration {
	return time.Duration(t.CountdownTicks) * t.Tick
}
