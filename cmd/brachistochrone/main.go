package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/lukaszgryglicki/brachistochrone/internal/brachistochrone"
)

func main() {
	brachistochrone.Debug = os.Getenv("DEBUG") != ""
	if brachistochrone.Debug {
		brachistochrone.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if w, err := strconv.Atoi(os.Getenv("WORKERS")); err == nil {
		brachistochrone.Workers = w
	}
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := brachistochrone.ConfigPath
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := brachistochrone.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}
