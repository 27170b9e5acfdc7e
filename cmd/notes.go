package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/scalechords/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(notesCmd)
}

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Lists the accepted note spellings and interval labels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		var spellings []string
		for _, name := range note.Notes() {
			pc, err := note.NoteToInteger(name)
			if err != nil {
				return err
			}
			spellings = append(spellings, fmt.Sprintf("%s=%d", name, pc))
		}
		fmt.Fprintf(w, "notes:     %s\n", strings.Join(spellings, " "))
		fmt.Fprintf(w, "intervals: %s\n", labelsOf(note.Intervals()))
		return nil
	},
}
