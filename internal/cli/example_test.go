package cli

import (
	"fmt"
	flag "github.com/spf13/pflag"
	"os"
)

func ExampleNewCommandSet() {
	// The string used should be the name used to invoke your CLI.
	tlc := NewCommandSet("my-cli")
	tlc.Printer().Redirect(os.Stdout)

	sub := tlc.AddCommand("sub-command", "Shows an example of a sub-command")
	sub.Flags().Bool("do-something", false, "Makes the sub-command do something")

	// Parent command references are prepended, so this prints as 'my-cli sub-command [FLAGS]'.
	sub.Usage("sub-command [FLAGS]")

	sub.Does(func(flags *flag.FlagSet, out *Printer) error {
		// Flags are already parsed by the time this function is executed.
		if MustGet(flags.GetBool("do-something")) {
			out.Println("sub-command ran")
		}
		return nil
	})

	// Sub-commands are matched case-insensitive.
	if err := tlc.Exec([]string{"suB-ComMAnd", "--do-something"}); err != nil {
		fmt.Println("Something bad happened!")
	}

	// Help flags are set up for each command.
	_ = tlc.Exec([]string{"sub-command", "-h"})

	// Output:
	// sub-command ran
	//
	// Shows an example of a sub-command
	//
	// USAGE:
	// my-cli sub-command [FLAGS]
	//
	// FLAGS
	//       --do-something   Makes the sub-command do something
	//   -h, --help           Prints this usage information
}
