package brachistochrone

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	return RunConfig(cfg, os.Stdout)
}

// RunConfig traces every configured launch, then the sweep, writing one summary
// line per trace to w.
func RunConfig(cfg *Config, w io.Writer) error {
	start := time.Now()
	for _, tc := range cfg.Traces {
		tr, err := tc.Build(cfg)
		if err != nil {
			return fmt.Errorf("trace %s: %w", tc.Name, err)
		}
		if err := tr.Run(cfg.MaxSteps); err != nil {
			return fmt.Errorf("trace %s: %w", tc.Name, err)
		}
		tp, _ := tr.TurningPoint()
		fmt.Fprintf(w, "trace %s: angle=%.6f steps=%d end=%v turning=%v reflections=%d time=%.6fs\n",
			tc.Name, tc.Radians(), tr.Steps(), tr.Position(), tp, tr.Reflections(), tr.DescentTime())
		if Debug {
			for _, p := range tr.Points() {
				DebugLog("%s %v", tc.Name, p)
			}
		}
	}
	DebugLog("Traces: %d, time: %s", len(cfg.Traces), time.Since(start))

	s := cfg.Sweep
	if s == nil {
		return nil
	}
	start = time.Now()
	results, err := Sweep(Angles(s.FromDeg, s.ToDeg, s.Count), cfg.Options())
	DebugLog("Sweep: %d angles, time: %s", len(results), time.Since(start))
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "sweep angle=%.6f error: %v\n", r.Angle, r.Err)
			continue
		}
		fmt.Fprintf(w, "sweep angle=%.6f steps=%d end=%v turning=%v time=%.6fs\n",
			r.Angle, r.Steps, r.End, r.Turning, r.DescentTime)
	}
	if s.Target != nil {
		best, d, ok := Nearest(results, *s.Target)
		if !ok {
			return errors.Join(fmt.Errorf("sweep: no successful trace to compare with target %v", *s.Target), err)
		}
		fmt.Fprintf(w, "nearest to %v: angle=%.6f distance=%.6g time=%.6fs\n", *s.Target, best.Angle, d, best.DescentTime)
	}
	return err
}
