// Command wavlowpass applies a spectral low-pass to the payload of an 8-bit
// WAV file.
//
// The file is transformed with a radix-2 FFT, every bin from
// floor(N·retain) upward is zeroed, and the inverse transform is rounded
// back to bytes. The header is written unchanged.
//
// Usage:
//
//	wavlowpass [flags]
//
// Flags left unset fall back to WAVLOWPASS_IN, WAVLOWPASS_OUT,
// WAVLOWPASS_RETAIN and WAVLOWPASS_BACKEND, which may be provided through a
// dotenv file.
//
// Examples:
//
//	wavlowpass -in speech.wav -out filtered.wav
//	wavlowpass -retain 0.5 -backend gonum
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavfft/dsp/fft"
	"github.com/cwbudde/algo-wavfft/dsp/lowpass"
	"github.com/cwbudde/algo-wavfft/stats/pcm"
	"github.com/cwbudde/algo-wavfft/wav"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if err := filter(cfg, stdout); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func filter(cfg config, stdout io.Writer) error {
	file, err := wav.Load(cfg.in)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(stdout, "File loaded! Its info:\n"); err != nil {
		return err
	}
	if err := wav.WriteInfo(stdout, file); err != nil {
		return err
	}

	engine, err := fft.New(fft.WithBackend(cfg.backend), fft.WithParallelDepth(cfg.parallel))
	if err != nil {
		return err
	}

	lp, err := lowpass.New(lowpass.WithRetain(cfg.retain), lowpass.WithEngine(engine))
	if err != nil {
		return err
	}

	before := pcm.Calculate(file.ExtractSamples())

	res, err := lp.ProcessFile(file)
	if err != nil {
		return err
	}

	after := pcm.Calculate(res.Samples)

	if err := file.Save(cfg.out); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(stdout, "\nKept bins %d/%d (%.2f%% of spectral energy), backend %s\n",
		res.Cutoff, res.Bins, 100*res.RetainedEnergy, engine.Backend()); err != nil {
		return err
	}
	if err := printLevels(stdout, before, after); err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "Transformed file saved to %s\n", cfg.out)
	return err
}

func printLevels(w io.Writer, before, after pcm.Stats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "\tRMS [dBFS]\tPeak [dBFS]\tCrest\tZero crossings\n"); err != nil {
		return err
	}

	for _, row := range []struct {
		label string
		s     pcm.Stats
	}{{"Input", before}, {"Output", after}} {
		if _, err := fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.3f\t%d\n",
			row.label, row.s.RMS_dBFS, row.s.Peak_dBFS, row.s.CrestFactor, row.s.ZeroCrossings); err != nil {
			return err
		}
	}

	return tw.Flush()
}
