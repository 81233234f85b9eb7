package transaction

import (
	"github.com/passbook-cli/passbook/internal/service"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(svc *service.Service) *cobra.Command {
	txCmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transaction"},
		Short:   "Deposit, withdraw, credit interest and work with receipts.",
		Long:    `Deposit, withdraw, credit interest and work with receipts.`,
	}

	txCmd.AddCommand(NewDepositCmd(svc))
	txCmd.AddCommand(NewWithdrawCmd(svc))
	txCmd.AddCommand(NewInterestCmd(svc))
	txCmd.AddCommand(NewParseCmd(svc))
	txCmd.AddCommand(NewHistoryCmd(svc))

	return txCmd
}
