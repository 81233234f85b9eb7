package transaction

import (
	"fmt"

	"github.com/passbook-cli/passbook/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewParseCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <confirmation-code>",
		Short: "Parse a confirmation code back into its details",
		Long: `Parse a previously issued confirmation code and show the transaction
it identifies. Timestamps are shown both in UTC and in the shared
display timezone.

Example: passbook tx parse D-140568-20260825143045-12`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := svc.Transaction.ParseConfirmation(args[0])
			if err != nil {
				return err
			}

			tableData := pterm.TableData{
				{pterm.Blue("Type"), id.Code().String()},
				{pterm.Blue("Account"), fmt.Sprintf("%d", id.AccountNumber())},
				{pterm.Blue("Time (UTC)"), id.UTCTimeISO()},
				{pterm.Blue("Local Time"), id.DisplayTime()},
				{pterm.Blue("Sequence"), fmt.Sprintf("%d", id.Sequence())},
			}
			return pterm.DefaultTable.WithData(tableData).Render()
		},
	}
}
