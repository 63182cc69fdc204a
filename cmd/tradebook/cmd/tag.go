package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag <trade-id>",
	Short: "Set tags and notes on a trade",
	Long: `Annotate a matched trade with tags and review notes.

Tags feed the stats filters; notes show up in the Org-mode Review
section. Annotations are reset by the next rebuild, since matching
always recomputes from scratch.

Example:
  tradebook tag 01J3QZ... --tag earnings --tag gap-up --notes "chased the open"`,
	Args: cobra.ExactArgs(1),
	RunE: runTag,
}

var (
	tagTags  []string
	tagNotes string
)

func init() {
	rootCmd.AddCommand(tagCmd)

	tagCmd.Flags().StringSliceVar(&tagTags, "tag", nil, "tag to set (repeatable)")
	tagCmd.Flags().StringVar(&tagNotes, "notes", "", "review notes")
}

func runTag(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.AnnotateTrade(args[0], tagTags, tagNotes); err != nil {
		return fmt.Errorf("annotate: %w", err)
	}

	fmt.Printf("Updated trade %s\n", args[0])
	return nil
}
