package transaction

import (
	"fmt"
	"time"

	"github.com/passbook-cli/passbook/internal/constants"
	"github.com/passbook-cli/passbook/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewHistoryCmd(svc *service.Service) *cobra.Command {
	var (
		accountNumber int64
		limit         int
	)

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List issued receipts, newest first",
		Long: `List issued receipts, newest first. Aborted withdrawals appear with
code X. Without --account, receipts from every account are shown.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			receipts, err := svc.Transaction.History(accountNumber, limit)
			if err != nil {
				return err
			}

			if len(receipts) == 0 {
				pterm.Info.Println("No receipts yet.")
				return nil
			}

			tableData := pterm.TableData{
				{"Seq", "Code", "Account", "Time (UTC)", "Confirmation"},
			}
			for _, r := range receipts {
				tableData = append(tableData, []string{
					fmt.Sprintf("%d", r.Sequence),
					r.Code,
					fmt.Sprintf("%d", r.AccountNumber),
					time.Unix(r.UTCTime, 0).UTC().Format("2006-01-02 15:04:05"),
					r.Confirmation,
				})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
		},
	}

	historyCmd.Flags().Int64VarP(&accountNumber, "account", "a", 0, "Only this account's receipts")
	historyCmd.Flags().IntVarP(&limit, "limit", "l", constants.DefaultHistoryLimit, "Maximum receipts to show")

	return historyCmd
}
