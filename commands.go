package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/delta/pon-sentimen-dashboard/classifier"
	"github.com/delta/pon-sentimen-dashboard/models"
	"github.com/delta/pon-sentimen-dashboard/preprocess"
	"github.com/delta/pon-sentimen-dashboard/utils"
)

var importCmd = &cobra.Command{
	Use:   "import <csv>",
	Short: "Import a labelled dataset CSV into the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := models.Migrate(); err != nil {
			return err
		}
		defer utils.CloseDB()

		n, err := models.ImportCSV(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d posts from %s\n", n, args[0])
		return nil
	},
}

var predictCmd = &cobra.Command{
	Use:   "predict <text...>",
	Short: "Predict the sentiment of one text and print it as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := classifier.Init(utils.GetConfiguration()); err != nil {
			return err
		}

		p, err := classifier.GetPredictor()
		if err != nil {
			return err
		}

		pred, err := p.Predict(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(pred, "", "  ")
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var prepareCmd = &cobra.Command{
	Use:   "prepare <text...>",
	Short: "Print text after cleaning, normalization, stopword removal and stemming",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), preprocess.Prepare(strings.Join(args, " ")))
		return nil
	},
}
