package main

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Giulio2002/sha3/internal/kat"
)

func newKatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kat <algorithm> <file.rsp>...",
		Short: "check NIST CAVP known-answer files",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := lookup(args[0])
			if err != nil {
				return err
			}
			failed := 0
			for _, path := range args[1:] {
				set, err := kat.Load(path)
				if err != nil {
					return err
				}
				bad := set.Verify(alg.sum)
				for _, m := range bad {
					a.log.Warn("known answer mismatch",
						zap.String("file", path),
						zap.Int("vector", m.Index),
						zap.Int("len", m.Vector.Len),
						zap.String("want", hex.EncodeToString(m.Vector.Digest)),
						zap.String("got", hex.EncodeToString(m.Got)),
					)
				}
				a.log.Debug("checked file", zap.String("file", path), zap.Int("vectors", len(set.Vectors)))
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d passed\n", path, len(set.Vectors)-len(bad), len(set.Vectors))
				failed += len(bad)
			}
			if failed > 0 {
				return errors.Errorf("%d vectors failed", failed)
			}
			return nil
		},
	}
}
