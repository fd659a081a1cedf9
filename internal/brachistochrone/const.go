package brachistochrone

const (
	DefaultG          = 9.8067 // gravitational acceleration, m/s^2
	DefaultStepHeight = 0.1    // stratum thickness, m
	MaxSteps          = 10_000 // step bound used by Run and Sweep when the config does not set one
	SweepAngles       = 32     // number of launch angles in a sweep when the config does not set one
	ConfigPath        = "scenes/config.json"
)
