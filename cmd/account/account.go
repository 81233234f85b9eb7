package account

import (
	"github.com/passbook-cli/passbook/internal/service"
	"github.com/spf13/cobra"
)

func NewAccountCmd(svc *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Open accounts and inspect their balances.",
		Long:  `Open accounts and inspect their balances.`,
	}

	accountCmd.AddCommand(NewOpenCmd(svc))
	accountCmd.AddCommand(NewListCmd(svc))
	accountCmd.AddCommand(NewShowCmd(svc))

	return accountCmd
}
