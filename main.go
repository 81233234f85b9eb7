package main

import (
	"github.com/passbook-cli/passbook/cmd"
	"github.com/passbook-cli/passbook/migrations"
)

func main() {
	cmd.Execute(migrations.FS)
}
