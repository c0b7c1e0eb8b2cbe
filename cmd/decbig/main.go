package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/oisee/decbig/pkg/dec"
	"github.com/oisee/decbig/pkg/fft"
	"github.com/oisee/decbig/pkg/verify"
)

func main() {
	var verbose bool

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger().Level(zerolog.InfoLevel)

	rootCmd := &cobra.Command{
		Use:   "decbig",
		Short: "decbig — arbitrary-precision decimal integer engine",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log = log.Level(zerolog.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// calc command
	calcCmd := &cobra.Command{
		Use:   "calc <op> <a> <b>",
		Short: "Evaluate one operation on signed decimal integers",
		Long: "op is one of add, sub, mul, div, mod, cmp. Division truncates\n" +
			"toward zero; the remainder's sign follows the dividend.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := strings.ToLower(args[0])
			a, err := dec.ParseInt(args[1])
			if err != nil {
				return errors.Wrap(err, "left operand")
			}
			b, err := dec.ParseInt(args[2])
			if err != nil {
				return errors.Wrap(err, "right operand")
			}
			switch op {
			case "add":
				fmt.Println(a.Add(b))
			case "sub":
				fmt.Println(a.Sub(b))
			case "mul":
				fmt.Println(a.Mul(b))
			case "div", "mod":
				if b.IsZero() {
					return errors.New("division by zero")
				}
				q, r := a.DivMod(b)
				if op == "div" {
					fmt.Println(q)
				} else {
					fmt.Println(r)
				}
			case "cmp":
				fmt.Println(a.Cmp(b))
			default:
				return errors.Errorf("unknown op %q", op)
			}
			return nil
		},
	}

	// selftest command
	var iters, maxLimbs, workers, fftLen int
	var seed int64
	var jsonOut string

	selftestCmd := &cobra.Command{
		Use:   "selftest",
		Short: "FFT precision probe plus randomized cross-verification",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().Int("len", fftLen).Msg("probing FFT roundoff at worst-case coefficients")
			worst, err := fft.SelfTest(fftLen, 999)
			if err != nil {
				return errors.Wrap(err, "FFT self-test")
			}
			log.Info().Float64("worst_roundoff", worst).Msg("FFT self-test passed")

			rep := verify.Run(verify.Config{
				Iters:    iters,
				MaxLimbs: maxLimbs,
				Seed:     seed,
				Workers:  workers,
				Log:      &log,
			})
			if jsonOut != "" {
				f, err := os.Create(jsonOut)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := rep.WriteJSON(f); err != nil {
					return err
				}
				log.Info().Str("path", jsonOut).Msg("report written")
			}
			if !rep.OK() {
				for _, m := range rep.Mismatches() {
					log.Error().Str("op", m.Op).Str("a", m.A).Str("b", m.B).
						Str("got", m.Got).Str("want", m.Want).Msg("mismatch")
				}
				return errors.Errorf("%d mismatches in %d checks", rep.Len(), rep.Checked())
			}
			fmt.Printf("OK: %d checks, 0 mismatches\n", rep.Checked())
			return nil
		},
	}
	selftestCmd.Flags().IntVar(&iters, "iters", 10000, "Random operand pairs to draw")
	selftestCmd.Flags().IntVar(&maxLimbs, "max-limbs", 1024, "Operand length cap in limbs")
	selftestCmd.Flags().Int64Var(&seed, "seed", 1, "Base RNG seed")
	selftestCmd.Flags().IntVar(&workers, "workers", 0, "Number of workers (0 = NumCPU)")
	selftestCmd.Flags().IntVar(&fftLen, "fft-len", 1<<20, "Transform length for the precision probe")
	selftestCmd.Flags().StringVar(&jsonOut, "json", "", "Write the verification report to this file")

	// bench command
	var digits int

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the core operations at a given operand size",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(1))
			a := randUint(rng, digits)
			b := randUint(rng, digits)
			as := a.String()

			fmt.Printf("operand size: %d digits\n", digits)
			timeIt("add  ", func() { _ = a.Add(b) })
			timeIt("sub  ", func() { _ = a.Add(b).Sub(b) })
			timeIt("mul  ", func() { _ = a.Mul(b) })
			p := a.Mul(b)
			timeIt("div  ", func() { _, _ = p.DivMod(b) })
			timeIt("parse", func() { _, _ = dec.ParseUint(as) })
			timeIt("emit ", func() { _ = a.String() })
			return nil
		},
	}
	benchCmd.Flags().IntVar(&digits, "digits", 1_000_000, "Decimal digits per operand")

	rootCmd.AddCommand(calcCmd, selftestCmd, benchCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

func timeIt(name string, f func()) {
	start := time.Now()
	f()
	fmt.Printf("  %s %12s\n", name, time.Since(start).Round(time.Microsecond))
}

func randUint(rng *rand.Rand, digits int) dec.Uint {
	buf := make([]byte, digits)
	buf[0] = byte('1' + rng.Intn(9))
	for i := 1; i < digits; i++ {
		buf[i] = byte('0' + rng.Intn(10))
	}
	v, err := dec.ParseUint(string(buf))
	if err != nil {
		panic(err)
	}
	return v
}
