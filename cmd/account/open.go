package account

import (
	"fmt"
	"strings"

	"github.com/passbook-cli/passbook/internal/constants"
	"github.com/passbook-cli/passbook/internal/ledger"
	"github.com/passbook-cli/passbook/internal/service"
	"github.com/passbook-cli/passbook/internal/ui"
	"github.com/passbook-cli/passbook/internal/ui/prompts"
	"github.com/passbook-cli/passbook/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// Command-line flags
var (
	openNumber    int64
	openFirstName string
	openLastName  string
	openBalance   string
	openTZName    string
	openTZHours   int
	openTZMinutes int
)

// AccountOpener manages the state and logic for opening an account
type AccountOpener struct {
	number    int64
	firstName string
	lastName  string
	balance   float64
	tz        *ledger.TimeZoneOffset

	svc *service.Service
}

func NewOpenCmd(svc *service.Service) *cobra.Command {
	openCmd := &cobra.Command{
		Use:   "open",
		Short: "Open a new account.",
		Long: `Open a new account with a holder name and optional starting balance.

Passing a timezone changes the display timezone shared by every account
on the ledger; without one, the current setting is kept.

Example: passbook account open -n 140568 -f Ada -l Lovelace -b 100.00`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opener := &AccountOpener{svc: svc}

			hasFlags := cmd.Flags().Changed("number") ||
				cmd.Flags().Changed("first-name")

			if hasFlags {
				return opener.FlagsMode(cmd)
			}
			return opener.InteractiveMode()
		},
	}

	openCmd.Flags().Int64VarP(&openNumber, "number", "n", 0, "Account number (positive integer)")
	openCmd.Flags().StringVarP(&openFirstName, "first-name", "f", "", "Holder first name")
	openCmd.Flags().StringVarP(&openLastName, "last-name", "l", "", "Holder last name (optional)")
	openCmd.Flags().StringVarP(&openBalance, "balance", "b", "", "Initial balance (default 0)")
	openCmd.Flags().StringVar(&openTZName, "tz-name", "", "Display timezone name (e.g. IST)")
	openCmd.Flags().IntVar(&openTZHours, "tz-hours", 0, "Display timezone hour offset (-23 to 23)")
	openCmd.Flags().IntVar(&openTZMinutes, "tz-minutes", 0, "Display timezone minute offset (-59 to 59)")

	return openCmd
}

// FlagsMode builds an account from command-line flags
func (ao *AccountOpener) FlagsMode(cmd *cobra.Command) error {
	if openNumber <= 0 {
		return fmt.Errorf("account number must be a positive integer")
	}
	if err := validateName(openFirstName, true); err != nil {
		return err
	}
	if err := validateName(openLastName, false); err != nil {
		return err
	}

	ao.number = openNumber
	ao.firstName = openFirstName
	ao.lastName = openLastName

	if openBalance != "" {
		balance, err := utils.ParseAmount(openBalance)
		if err != nil {
			return fmt.Errorf("invalid initial balance: %w", err)
		}
		ao.balance = balance
	}

	if openTZName != "" {
		tz, err := ledger.NewTimeZone(openTZName, openTZHours, openTZMinutes)
		if err != nil {
			return err
		}
		ao.tz = tz
	}

	return ao.Save()
}

// InteractiveMode builds an account through interactive prompts
func (ao *AccountOpener) InteractiveMode() error {
	number, err := prompts.PromptAccountNumber(nil)
	if err != nil {
		return err
	}
	ao.number = number

	firstName, err := prompts.PromptHolderName("First name:", true)
	if err != nil {
		return err
	}
	ao.firstName = firstName

	lastName, err := prompts.PromptHolderName("Last name (optional):", false)
	if err != nil {
		return err
	}
	ao.lastName = lastName

	balance, err := prompts.PromptInitialBalance()
	if err != nil {
		return err
	}
	ao.balance = balance

	setTZ, err := prompts.PromptConfirm("Set a display timezone? (applies to every account)", false)
	if err != nil {
		return err
	}
	if setTZ {
		tz, err := prompts.PromptTimeZone()
		if err != nil {
			return err
		}
		ao.tz = tz
	}

	ao.displaySummary()

	confirm, err := prompts.PromptConfirm("Proceed with opening the account?", true)
	if err != nil {
		return err
	}
	if !confirm {
		return fmt.Errorf("account opening cancelled")
	}

	return ao.Save()
}

// Save persists the account and prints the result
func (ao *AccountOpener) Save() error {
	acc, err := ao.svc.Account.OpenAccount(ao.number, ao.firstName, ao.lastName, ao.tz, ao.balance)
	if err != nil {
		return fmt.Errorf("failed to open account: %w", err)
	}

	ui.Separator()
	tableData := pterm.TableData{
		{pterm.Blue("Account Number"), fmt.Sprintf("%d", acc.Number)},
		{pterm.Blue("Holder"), strings.TrimSpace(acc.FirstName + " " + acc.LastName)},
		{pterm.Blue("Balance"), utils.FormatAmount(acc.Balance)},
	}
	pterm.DefaultTable.WithData(tableData).Render()
	pterm.Success.Println("Account opened successfully!")
	return nil
}

func (ao *AccountOpener) displaySummary() {
	ui.Separator()

	tzStr := "UTC"
	if ao.tz != nil {
		tzStr = ao.tz.String()
	}

	tableData := pterm.TableData{
		{pterm.Blue("Account Number"), fmt.Sprintf("%d", ao.number)},
		{pterm.Blue("Holder"), strings.TrimSpace(ao.firstName + " " + ao.lastName)},
		{pterm.Blue("Initial Balance"), utils.FormatAmount(ao.balance)},
		{pterm.Blue("Display Timezone"), tzStr},
	}

	pterm.DefaultTable.WithData(tableData).Render()
}

func validateName(name string, required bool) error {
	name = strings.TrimSpace(name)
	if required && name == "" {
		return fmt.Errorf("first name must be at least 1 character long")
	}
	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}
