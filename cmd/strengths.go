package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eykd/diceseed-go/internal/domain"
)

// StrengthInfo describes one supported strength.
type StrengthInfo struct {
	Choice       int `json:"choice"`
	Bits         int `json:"bits"`
	ChecksumBits int `json:"checksum_bits"`
	Words        int `json:"words"`
	Bytes        int `json:"bytes"`
	Rolls        int `json:"rolls"`
	Pairs        int `json:"pairs"`
}

// strengthsOutput is the top-level JSON structure for strengths output.
type strengthsOutput struct {
	Strengths []StrengthInfo `json:"strengths"`
}

func strengthInfos() []StrengthInfo {
	all := domain.Strengths()
	infos := make([]StrengthInfo, len(all))
	for i, s := range all {
		infos[i] = StrengthInfo{
			Choice:       i + 1,
			Bits:         s.Bits(),
			ChecksumBits: s.ChecksumBits(),
			Words:        s.WordCount(),
			Bytes:        s.EntropyBytes(),
			Rolls:        s.RollsNeeded(),
			Pairs:        s.PairsNeeded(),
		}
	}
	return infos
}

// NewStrengthsCmd creates the strengths command.
func NewStrengthsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:          "strengths",
		Short:        "List supported entropy sizes and the rolls each needs",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := strengthInfos()
			if jsonOutput {
				writeJSON(cmd.OutOrStdout(), &strengthsOutput{Strengths: infos})
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CHOICE\tBITS\tCHECKSUM\tWORDS\tBYTES\tROLLS\tPAIRS")
			for _, in := range infos {
				fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
					in.Choice, in.Bits, in.ChecksumBits, in.Words, in.Bytes, in.Rolls, in.Pairs)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}
