// Command loudinfo measures BS.1770 loudness and true peak of synthesized
// reference signals or WAV files.
//
// Usage:
//
//	loudinfo [flags]
//
// Examples:
//
//	loudinfo -signal sine -freq 1000 -level -20
//	loudinfo -signal ebu3341-4 -channels 2
//	loudinfo -signal sine -freq 12000 -level -1 -reference
//	loudinfo -signal ebu3342-1 -out case1.wav
//	loudinfo -in program.wav
//	loudinfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

type options struct {
	signal    string
	freq      float64
	level     float64
	duration  time.Duration
	rate      float64
	channels  int
	gate      string
	in        string
	out       string
	reference bool
}

func main() {
	var opts options

	flag.StringVar(&opts.signal, "signal", "sine", "synthesized signal (see -list)")
	flag.Float64Var(&opts.freq, "freq", 1000, "tone frequency in Hz for sine")
	flag.Float64Var(&opts.level, "level", -20, "peak level in dBFS for sine and noise")
	flag.DurationVar(&opts.duration, "duration", 10*time.Second, "length of sine, noise and silence")
	flag.Float64Var(&opts.rate, "rate", 48000, "sample rate in Hz")
	flag.IntVar(&opts.channels, "channels", 2, "number of identical channels")
	flag.StringVar(&opts.gate, "gate", "absolute", "gate for the momentary and short-term maxima: absolute or none")
	flag.StringVar(&opts.in, "in", "", "meter a WAV file instead of a synthesized signal")
	flag.StringVar(&opts.out, "out", "", "also write the synthesized signal as 24-bit WAV")
	flag.BoolVar(&opts.reference, "reference", false, "print the FFT-interpolated reference true peak per channel")
	list := flag.Bool("list", false, "list available signals")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: loudinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints integrated loudness, loudness range and peaks.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  loudinfo -signal sine -freq 1000 -level -20\n")
		fmt.Fprintf(os.Stderr, "  loudinfo -signal ebu3341-4\n")
		fmt.Fprintf(os.Stderr, "  loudinfo -in program.wav\n")
		fmt.Fprintf(os.Stderr, "  loudinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
