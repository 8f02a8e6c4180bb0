package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/realty-insights/internal/assistant"
	"github.com/sells-group/realty-insights/internal/config"
	"github.com/sells-group/realty-insights/internal/fetcher"
)

var loadSave bool

var loadCmd = &cobra.Command{
	Use:   "load <path>",
	Short: "Parse a dataset file and report whether it loads",
	Long:  "Parses an xlsx, csv or json file the way an upload would. With --save the records are upserted into the configured database.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := cfg.Validate("load"); err != nil {
			return err
		}

		src := fetcher.NewFileSource(args[0], fileOptions())
		res := assistant.New(nil).Load(ctx, src)
		out := cmd.OutOrStdout()
		if res.Fallback {
			fmt.Fprintf(out, "not loaded: %v\nseed data would be used instead\n", res.Err)
			return nil
		}
		fmt.Fprintf(out, "loaded %d records across %d areas from %s\n",
			res.Snapshot.Len(), len(res.Snapshot.AllAreas()), src.Name())

		if !loadSave {
			return nil
		}
		if cfg.Data.Driver == config.DriverFile {
			return eris.New("load: --save needs data.driver sqlite or postgres")
		}

		st, err := openStore(ctx)
		if err != nil {
			return eris.Wrap(err, "load: open store")
		}
		defer st.Close() //nolint:errcheck

		n, err := st.Save(ctx, res.Snapshot.Records())
		if err != nil {
			return eris.Wrap(err, "load: save records")
		}
		zap.L().Info("records saved", zap.String("store", st.Name()), zap.Int64("rows", n))
		fmt.Fprintf(out, "saved %d rows to %s\n", n, st.Name())
		return nil
	},
}

func init() {
	loadCmd.Flags().BoolVar(&loadSave, "save", false, "upsert the parsed records into the configured database")
	rootCmd.AddCommand(loadCmd)
}
