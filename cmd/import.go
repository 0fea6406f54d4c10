package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lexi/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import words from a CSV or XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		deckID, err := deckIDFromFlag(ctx, cmd, st)
		if err != nil {
			return err
		}

		cfg := importer.DefaultConfig(args[0])
		cfg.DeckID = deckID
		if sheet, _ := cmd.Flags().GetString("sheet"); sheet != "" {
			cfg.Sheet = sheet
		}
		cfg.TermCol, _ = cmd.Flags().GetInt("term-col")
		cfg.MeaningCol, _ = cmd.Flags().GetInt("meaning-col")
		if noHeader, _ := cmd.Flags().GetBool("no-header"); noHeader {
			cfg.SkipHeader = false
		}

		res, err := importer.Import(ctx, st.Words(), cfg)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}

		fmt.Printf("Imported %d words, skipped %d duplicates.\n", res.Created, res.Skipped)
		for _, e := range res.Errors {
			fmt.Println("  warning:", e)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().String("deck", "", "Deck name to import into")
	importCmd.Flags().String("sheet", "", "Sheet name (xlsx only, defaults to the first sheet)")
	importCmd.Flags().Int("term-col", 0, "0-based column holding the term")
	importCmd.Flags().Int("meaning-col", 1, "0-based column holding the meaning")
	importCmd.Flags().Bool("no-header", false, "Treat the first row as data, not a header")
}
