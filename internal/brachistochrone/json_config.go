package brachistochrone

import (
	"encoding/json"
	"fmt"
	"os"
)

// TraceCfg describes one launch. Angle (radians) wins over AngleDeg when both are set;
// zero StepHeight or G fall back to the top-level values.
type TraceCfg struct {
	Name       string `json:"name,omitempty"`
	AngleDeg   Real   `json:"angleDeg,omitempty"`
	Angle      Real   `json:"angle,omitempty"`
	StepHeight Real   `json:"stepHeight,omitempty"`
	G          Real   `json:"g,omitempty"`
}

// SweepCfg launches Count rays between FromDeg and ToDeg. With a Target the angle
// whose path passes closest to it is reported.
type SweepCfg struct {
	FromDeg Real    `json:"fromDeg"`
	ToDeg   Real    `json:"toDeg"`
	Count   int     `json:"count,omitempty"`
	Target  *Point2 `json:"target,omitempty"`
}

type Config struct {
	G          Real       `json:"g,omitempty"`
	StepHeight Real       `json:"stepHeight,omitempty"`
	MaxSteps   int        `json:"maxSteps,omitempty"`
	Workers    int        `json:"workers,omitempty"`
	Traces     []TraceCfg `json:"traces,omitempty"`
	Sweep      *SweepCfg  `json:"sweep,omitempty"`
}

// Radians returns the launch angle in radians.
func (tc TraceCfg) Radians() Real {
	if tc.Angle != 0 {
		return tc.Angle
	}
	return deg2rad(tc.AngleDeg)
}

// Build validates and constructs the tracer, filling step height and g from cfg.
func (tc TraceCfg) Build(cfg *Config) (*Tracer, error) {
	step, g := tc.StepHeight, tc.G
	if step == 0 {
		step = cfg.StepHeight
	}
	if g == 0 {
		g = cfg.G
	}
	return NewTracer(tc.Radians(), step, g)
}

// Options returns the sweep options for cfg.
func (cfg *Config) Options() SweepOptions {
	return SweepOptions{StepHeight: cfg.StepHeight, G: cfg.G, MaxSteps: cfg.MaxSteps, Workers: cfg.Workers}
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	// Defaults / validation
	if cfg.G <= 0 {
		cfg.G = DefaultG
	}
	if cfg.StepHeight <= 0 {
		cfg.StepHeight = DefaultStepHeight
	}
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = MaxSteps
	}
	if len(cfg.Traces) == 0 && cfg.Sweep == nil {
		return nil, fmt.Errorf("%w: config has no traces and no sweep", ErrConfig)
	}
	for i := range cfg.Traces {
		if cfg.Traces[i].Name == "" {
			cfg.Traces[i].Name = fmt.Sprintf("#%d", i)
		}
	}
	if s := cfg.Sweep; s != nil {
		if s.Count <= 0 {
			s.Count = SweepAngles
		}
		if s.FromDeg <= 0 || s.ToDeg >= 90 || s.FromDeg > s.ToDeg {
			return nil, fmt.Errorf("%w: sweep range must satisfy 0 < fromDeg <= toDeg < 90, got %g..%g", ErrConfig, s.FromDeg, s.ToDeg)
		}
	}
	return &cfg, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	DebugLog("Loaded config from %s: g=%g step=%g maxSteps=%d traces=%d sweep=%v", path, cfg.G, cfg.StepHeight, cfg.MaxSteps, len(cfg.Traces), cfg.Sweep != nil)
	return cfg, nil
}
