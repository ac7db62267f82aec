package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"titanic-dash/internal/api"
	"titanic-dash/internal/chart"
	"titanic-dash/internal/domain"
)

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	var (
		in             domain.SelectionInput
		ageMin, ageMax int
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Count survivors for a selection of passengers",
		Example: `  titanic summary
  titanic summary --souls Gentlemen --deck "1st Class" --age-min 18 --age-max 40
  titanic summary --sex female -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("age-min") {
				in.AgeMin = &ageMin
			}
			if cmd.Flags().Changed("age-max") {
				in.AgeMax = &ageMax
			}
			sel, err := in.Resolve()
			if err != nil {
				return err
			}

			svc, err := opts.loadService(cmd)
			if err != nil {
				return err
			}
			sum, err := svc.Summarize(cmd.Context(), sel.Criteria)
			if err != nil {
				return err
			}

			resp := api.NewSummaryResponse(sel, *sum)
			if getOutputFormat(cmd) == "json" {
				return printJSON(cmd.OutOrStdout(), resp)
			}
			return printSummary(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&in.Souls, "souls", "", "Souls label: All Hands, Gentlemen or Ladies")
	cmd.Flags().StringVar(&in.Deck, "deck", "", "Deck label: All Decks, 1st Class, 2nd Class or 3rd Class")
	cmd.Flags().StringVar(&in.Sex, "sex", "", "Sex filter (male or female); overrides --souls")
	cmd.Flags().StringVar(&in.Class, "class", "", "Passenger class 1, 2 or 3; overrides --deck")
	cmd.Flags().IntVar(&ageMin, "age-min", domain.MinAge, "Lower age bound (inclusive)")
	cmd.Flags().IntVar(&ageMax, "age-max", domain.MaxAge, "Upper age bound (inclusive)")
	return cmd
}

func printSummary(cmd *cobra.Command, resp api.SummaryResponse) error {
	out := cmd.OutOrStdout()
	if resp.SoulsUnmapped {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "note: %q has no entry in the souls mapping; no sex filter applied\n", resp.Souls)
	}

	rows := [][2]string{
		{"Selection", resp.Subtitle},
		{"Souls", chart.FormatCount(resp.Total)},
		{chart.LabelSaved, chart.SliceLabel(resp.Survived, resp.Total)},
		{chart.LabelPerished, chart.SliceLabel(resp.Perished, resp.Total)},
	}
	if resp.Total == 0 {
		rows = append(rows, [2]string{"Note", "No souls match these filters."})
	}
	return printKeyValues(out, rows)
}
