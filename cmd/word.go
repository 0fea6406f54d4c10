package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favCmd = &cobra.Command{
	Use:   "fav <id>",
	Short: "Mark a word as favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		off, _ := cmd.Flags().GetBool("off")
		if err := st.Words().SetFavorite(cmd.Context(), args[0], !off); err != nil {
			return fmt.Errorf("set favorite: %w", err)
		}
		if off {
			fmt.Println("Removed from favorites.")
		} else {
			fmt.Println("Added to favorites.")
		}
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a word",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Words().Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete word: %w", err)
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func init() {
	favCmd.Flags().Bool("off", false, "Remove the favorite mark instead")
}
