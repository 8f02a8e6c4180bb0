package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/realty-insights/internal/model"
)

var queryFormat string

var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Answer one question against the dataset",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initAssistant(cmd.Context(), "query")
		if err != nil {
			return err
		}
		defer env.Close()

		resp := env.Service.Analyze(strings.Join(args, " "))
		return writeResponse(cmd.OutOrStdout(), resp, queryFormat)
	},
}

// writeResponse prints a response as its summary text, JSON or YAML.
func writeResponse(w io.Writer, resp model.Response, format string) error {
	switch format {
	case "", "text":
		_, err := fmt.Fprintln(w, strings.TrimSpace(resp.Summary))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(resp), "query: encode json")
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return eris.Wrap(err, "query: encode yaml")
		}
		return eris.Wrap(enc.Close(), "query: close yaml encoder")
	default:
		return eris.Errorf("query: unknown format %q (want text, json or yaml)", format)
	}
}

func init() {
	queryCmd.Flags().StringVar(&queryFormat, "format", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(queryCmd)
}
