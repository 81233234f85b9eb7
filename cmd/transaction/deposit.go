package transaction

import (
	"fmt"

	"github.com/passbook-cli/passbook/internal/ledger"
	"github.com/passbook-cli/passbook/internal/service"
	"github.com/passbook-cli/passbook/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewDepositCmd(svc *service.Service) *cobra.Command {
	var (
		accountNumber int64
		amountStr     string
	)

	depositCmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit an amount into an account",
		Long: `Deposit an amount into an account and print the receipt.

Example: passbook tx deposit -a 140568 -m 250.00`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := utils.ParseAmount(amountStr)
			if err != nil {
				return err
			}

			receipt, err := svc.Transaction.Deposit(accountNumber, amount)
			if err != nil {
				return err
			}

			renderReceipt(receipt)
			pterm.Success.Printf("Deposited %s into account %d\n", utils.FormatAmount(amount), accountNumber)
			return nil
		},
	}

	depositCmd.Flags().Int64VarP(&accountNumber, "account", "a", 0, "Account number")
	depositCmd.Flags().StringVarP(&amountStr, "amount", "m", "", "Amount to deposit")
	depositCmd.MarkFlagRequired("account")
	depositCmd.MarkFlagRequired("amount")

	return depositCmd
}

func renderReceipt(receipt *ledger.TransactionID) {
	tableData := pterm.TableData{
		{pterm.Blue("Confirmation"), receipt.ConfirmationCode()},
		{pterm.Blue("Type"), receipt.Code().String()},
		{pterm.Blue("Account"), fmt.Sprintf("%d", receipt.AccountNumber())},
		{pterm.Blue("Time"), receipt.DisplayTime()},
		{pterm.Blue("Sequence"), fmt.Sprintf("%d", receipt.Sequence())},
	}
	pterm.DefaultTable.WithData(tableData).Render()
}
