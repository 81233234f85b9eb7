package transaction

import (
	"fmt"

	"github.com/passbook-cli/passbook/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewInterestCmd(svc *service.Service) *cobra.Command {
	var (
		accountNumber int64
		all           bool
	)

	interestCmd := &cobra.Command{
		Use:   "interest",
		Short: "Credit monthly interest",
		Long: `Credit one month of interest at the shared rate, to one account
or to every account.

Example: passbook tx interest -a 140568
         passbook tx interest --all`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (accountNumber != 0) {
				return fmt.Errorf("pass exactly one of --account or --all")
			}

			if all {
				receipts, err := svc.Transaction.PayMonthlyInterestAll()
				if err != nil {
					return err
				}
				for _, receipt := range receipts {
					pterm.Println(receipt.ConfirmationCode())
				}
				pterm.Success.Printf("Credited interest to %d account(s)\n", len(receipts))
				return nil
			}

			receipt, err := svc.Transaction.PayMonthlyInterest(accountNumber)
			if err != nil {
				return err
			}
			renderReceipt(receipt)
			pterm.Success.Printf("Credited interest to account %d\n", accountNumber)
			return nil
		},
	}

	interestCmd.Flags().Int64VarP(&accountNumber, "account", "a", 0, "Account number")
	interestCmd.Flags().BoolVar(&all, "all", false, "Credit interest to every account")

	return interestCmd
}
