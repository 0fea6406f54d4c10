package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage decks",
}

var deckAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		d, err := st.Decks().Create(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("create deck: %w", err)
		}
		fmt.Printf("Created deck %q (%s)\n", d.Name, d.ID)
		return nil
	},
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List decks",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		decks, err := st.Decks().List(ctx)
		if err != nil {
			return fmt.Errorf("list decks: %w", err)
		}
		if len(decks) == 0 {
			fmt.Println("No decks yet.")
			return nil
		}
		for _, d := range decks {
			words, err := st.Words().List(ctx, &d.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%-24s %4d words\n", d.Name, len(words))
		}
		return nil
	},
}

var deckRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a deck and its words",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		d, err := st.Decks().GetByName(ctx, args[0])
		if err != nil {
			return fmt.Errorf("deck %q: %w", args[0], err)
		}
		if err := st.Decks().Delete(ctx, d.ID); err != nil {
			return fmt.Errorf("delete deck: %w", err)
		}
		fmt.Printf("Deleted deck %q\n", d.Name)
		return nil
	},
}

func init() {
	deckCmd.AddCommand(deckAddCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckRmCmd)
}
