package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a sample dataset and questions (no TUI)",
	Long: `Synthesize one dataset and print generated question/answer pairs.

This is a stateless developer tool for checking template wording and
answer computation. Nothing is scored and no quiz state is kept.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
}

func runPreview(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)
	count := v.GetInt("count")

	sess, notice, err := buildSession(v)
	if err != nil {
		return err
	}
	if notice != "" {
		return fmt.Errorf("%s", notice)
	}

	ds := sess.Dataset()
	fmt.Printf("Dataset %s (total $%d)\n", ds.ID, ds.Total)
	for _, id := range ds.Order {
		it := ds.Items[id]
		fmt.Printf("  %-3s qty %3d  total $%4d  per unit %.4f\n", id, it.Quantity, it.TotalPrice, it.PricePerUnit)
	}
	fmt.Println()

	for i := 1; i <= count; i++ {
		q := sess.Current()
		if q == nil {
			break
		}

		fmt.Printf("Q%d [%s]: %s\n", i, q.Type, q.Text)
		fmt.Printf("    answer: %s", q.Answer.Text)
		if len(q.Variables) > 0 {
			names := make([]string, 0, len(q.Variables))
			for name := range q.Variables {
				names = append(names, name)
			}
			sort.Strings(names)
			fmt.Print("  (")
			for j, name := range names {
				if j > 0 {
					fmt.Print(", ")
				}
				fmt.Printf("%s=%s", name, q.Variables[name])
			}
			fmt.Print(")")
		}
		fmt.Println()

		if err := sess.NextQuestion(); err != nil {
			return err
		}
	}

	return nil
}
