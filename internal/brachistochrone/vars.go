package brachistochrone

var (
	Debug = false // set to true for verbose debug output
	// Workers caps the number of goroutines used by Sweep, 0 means runtime.NumCPU()
	Workers = 0
)
