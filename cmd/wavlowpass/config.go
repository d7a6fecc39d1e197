package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/cwbudde/algo-wavfft/dsp/fft"
	"github.com/cwbudde/algo-wavfft/dsp/lowpass"
)

const (
	envRetain  = "WAVLOWPASS_RETAIN"
	envBackend = "WAVLOWPASS_BACKEND"
	envIn      = "WAVLOWPASS_IN"
	envOut     = "WAVLOWPASS_OUT"

	defaultIn  = "samples/speech.wav"
	defaultOut = "samples/copy.wav"
)

type config struct {
	in       string
	out      string
	retain   float64
	backend  fft.Backend
	parallel int
}

// parseConfig resolves flags, then fills every flag left unset from the
// environment (optionally seeded from a dotenv file), then from defaults.
func parseConfig(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("wavlowpass", flag.ContinueOnError)
	fs.SetOutput(stderr)

	in := fs.String("in", defaultIn, "input WAV file (env "+envIn+")")
	out := fs.String("out", defaultOut, "output WAV file (env "+envOut+")")
	retain := fs.Float64("retain", lowpass.DefaultRetain, "fraction of spectrum bins to keep, 0..1 (env "+envRetain+")")
	backend := fs.String("backend", fft.BackendRecursive.String(), "transform backend: recursive, plan, gonum (env "+envBackend+")")
	parallel := fs.Int("parallel", 0, "goroutine fan-out depth of the recursive backend")
	envFile := fs.String("env", "", "dotenv file with defaults (default: .env if present)")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: wavlowpass [flags]\n\n")
		_, _ = fmt.Fprintf(stderr, "Low-pass filters an 8-bit WAV file by zeroing the upper spectrum bins.\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(stderr, "\nExamples:\n")
		_, _ = fmt.Fprintf(stderr, "  wavlowpass -in speech.wav -out filtered.wav\n")
		_, _ = fmt.Fprintf(stderr, "  wavlowpass -retain 0.5 -backend plan\n")
		_, _ = fmt.Fprintf(stderr, "  wavlowpass -env filter.env\n")
	}

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if err := loadEnvFile(*envFile); err != nil {
		return config{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["in"] {
		*in = getEnv(envIn, *in)
	}
	if !set["out"] {
		*out = getEnv(envOut, *out)
	}
	if !set["backend"] {
		*backend = getEnv(envBackend, *backend)
	}
	if !set["retain"] {
		v, err := getEnvFloat(envRetain, *retain)
		if err != nil {
			return config{}, err
		}
		*retain = v
	}

	b, err := fft.ParseBackend(*backend)
	if err != nil {
		return config{}, err
	}

	return config{
		in:       *in,
		out:      *out,
		retain:   *retain,
		backend:  b,
		parallel: *parallel,
	}, nil
}

// loadEnvFile reads path into the environment. An empty path loads .env when
// it exists; an explicit path must exist.
func loadEnvFile(path string) error {
	if path == "" {
		_ = godotenv.Load()
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}

	return f, nil
}
