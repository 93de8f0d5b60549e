// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pdiddy/html2md/internal/convert"
)

func runConvert(cmd *cobra.Command, args []string) error {
	// Argument errors print usage; conversion errors do not.
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		w = io.Discard
	}

	_, err = convert.New(afero.NewOsFs(), cfg, w).Convert(cmd.Context(), args[0])
	return err
}
