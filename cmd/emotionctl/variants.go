package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ressKim-io/emotion-classifier/internal/infrastructure/config"
	"github.com/ressKim-io/emotion-classifier/internal/infrastructure/variants"
)

func newVariantsCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List classifier variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVariants(cmd, file)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Variants file overlaid on the built-in catalog (overrides EMOTION_CLASSIFIER_VARIANTS_FILE)")

	return cmd
}

func runVariants(cmd *cobra.Command, file string) error {
	if file == "" {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		file = cfg.Classifier.VariantsFile
	}

	catalog, err := variants.Load(file)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDEFAULT\tALLOWED")
	for _, name := range catalog.Names() {
		v, err := catalog.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%v\n", v.Name, v.DefaultEmotion, v.Labels())
	}
	return tw.Flush()
}
