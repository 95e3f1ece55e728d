package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	log     *zap.Logger
	verbose bool
}

func NewRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	var (
		algo   string
		length int
	)
	c := &cobra.Command{
		Use:          "sha3sum [file...]",
		Short:        "print SHA-3 and SHAKE checksums",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(a.verbose)
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := lookup(algo)
			if err != nil {
				return err
			}
			n := alg.defaultLen
			if cmd.Flags().Changed("length") {
				if !alg.xof {
					return errors.Errorf("--length only applies to shake128 and shake256")
				}
				if length < 0 {
					return errors.Errorf("--length must not be negative, got %d", length)
				}
				n = length
			}
			if len(args) == 0 {
				args = []string{"-"}
			}
			for _, name := range args {
				digest, read, err := hashInput(cmd.InOrStdin(), name, alg, n)
				if err != nil {
					return err
				}
				a.log.Debug("hashed input",
					zap.String("name", name),
					zap.String("algorithm", algo),
					zap.Int64("bytes", read),
				)
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%x  %s\n", digest, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	c.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	c.Flags().StringVarP(&algo, "algorithm", "a", "256", fmt.Sprintf("one of %v", algorithmNames()))
	c.Flags().IntVarP(&length, "length", "l", 0, "output length in bytes for shake128 and shake256")

	c.AddCommand(newKatCmd(a))
	return c
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// hashInput streams the named file, or stdin for "-", through a new session.
func hashInput(stdin io.Reader, name string, alg algorithm, n int) ([]byte, int64, error) {
	r := stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, 0, err
		}
		defer f.Close()
		r = f
	}
	s := alg.open()
	read, err := io.Copy(s, r)
	if err != nil {
		return nil, read, errors.Wrapf(err, "reading %s", name)
	}
	digest, err := s.Digest(n)
	if err != nil {
		return nil, read, err
	}
	return digest, read, nil
}
