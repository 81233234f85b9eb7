package transaction

import (
	"errors"

	"github.com/passbook-cli/passbook/internal/ledger"
	"github.com/passbook-cli/passbook/internal/service"
	"github.com/passbook-cli/passbook/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewWithdrawCmd(svc *service.Service) *cobra.Command {
	var (
		accountNumber int64
		amountStr     string
	)

	withdrawCmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw an amount from an account",
		Long: `Withdraw an amount from an account and print the receipt.

A withdrawal past the balance is rejected; the rejection itself issues
an abort receipt, shown for reference.

Example: passbook tx withdraw -a 140568 -m 100.00`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := utils.ParseAmount(amountStr)
			if err != nil {
				return err
			}

			receipt, err := svc.Transaction.Withdraw(accountNumber, amount)
			if err != nil {
				var abort *ledger.AbortError
				if errors.As(err, &abort) {
					renderReceipt(abort.Receipt)
					return errors.New("insufficient balance, withdrawal aborted")
				}
				return err
			}

			renderReceipt(receipt)
			pterm.Success.Printf("Withdrew %s from account %d\n", utils.FormatAmount(amount), accountNumber)
			return nil
		},
	}

	withdrawCmd.Flags().Int64VarP(&accountNumber, "account", "a", 0, "Account number")
	withdrawCmd.Flags().StringVarP(&amountStr, "amount", "m", "", "Amount to withdraw")
	withdrawCmd.MarkFlagRequired("account")
	withdrawCmd.MarkFlagRequired("amount")

	return withdrawCmd
}
