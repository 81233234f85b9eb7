package account

import (
	"fmt"
	"strings"
	"time"

	"github.com/passbook-cli/passbook/internal/constants"
	"github.com/passbook-cli/passbook/internal/service"
	"github.com/passbook-cli/passbook/internal/ui"
	"github.com/passbook-cli/passbook/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewShowCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "show <account-number>",
		Short:        "Show one account and its recent receipts",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var number int64
			if _, err := fmt.Sscanf(args[0], "%d", &number); err != nil {
				return fmt.Errorf("invalid account number: %s", args[0])
			}

			acc, err := svc.Account.GetAccount(number)
			if err != nil {
				return err
			}

			tableData := pterm.TableData{
				{pterm.Blue("Account Number"), fmt.Sprintf("%d", acc.Number)},
				{pterm.Blue("Holder"), strings.TrimSpace(acc.FirstName + " " + acc.LastName)},
				{pterm.Blue("Balance"), utils.FormatAmount(acc.Balance)},
			}
			if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
				return err
			}

			receipts, err := svc.Transaction.History(number, constants.DefaultHistoryLimit)
			if err != nil {
				return err
			}
			if len(receipts) == 0 {
				return nil
			}

			ui.Separator()
			historyData := pterm.TableData{
				{"Seq", "Code", "Time (UTC)", "Confirmation"},
			}
			for _, r := range receipts {
				historyData = append(historyData, []string{
					fmt.Sprintf("%d", r.Sequence),
					r.Code,
					time.Unix(r.UTCTime, 0).UTC().Format("2006-01-02 15:04:05"),
					r.Confirmation,
				})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(historyData).Render()
		},
	}
}
