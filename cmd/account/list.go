package account

import (
	"fmt"

	"github.com/passbook-cli/passbook/internal/service"
	"github.com/passbook-cli/passbook/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List all accounts",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := svc.Account.GetAllAccounts()
			if err != nil {
				return fmt.Errorf("failed to retrieve accounts: %w", err)
			}

			if len(accounts) == 0 {
				pterm.Info.Println("No accounts yet. Open one with: passbook account open")
				return nil
			}

			tableData := pterm.TableData{
				{"Number", "Holder", "Balance"},
			}
			for _, acc := range accounts {
				holder := acc.FirstName
				if acc.LastName != "" {
					holder += " " + acc.LastName
				}
				tableData = append(tableData, []string{
					fmt.Sprintf("%d", acc.Number),
					holder,
					utils.FormatAmount(acc.Balance),
				})
			}

			return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
		},
	}
}
