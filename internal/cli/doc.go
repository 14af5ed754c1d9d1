/*
Package cli provides the command structure used by the assertx tool.

A few policies apply to every command.

  - User-visible output goes to STDERR by default. This is supported with a configurable [Printer], which also marks rule results as passing or failing.
  - Flags are posix style, using [pflag].
  - Flags are NOT interspersed. Flags come before arguments, which keeps parsing predictable.
  - There are no global flags. Flags apply to the command at hand, and shared settings come from the environment.
  - Sub-command aliases are supported as additional, optional parameters to [CommandSet.AddCommand].

# Invocation

	CLI_NAME [SUB-COMMAND...] [FLAGS...] [ARGS...]

Just calling CLI_NAME will print usage information for the tool, when [CommandSet.RespondUsage] is used.

# Usage

The '-h' and '--help' flags are set up for each command, and [Command.Usage] describes its arguments.
Flag and sub-command usage is added to that description.

A [Command] prints its usage information along with the error when flags can't be parsed, or when its [CommandFunc] returns a [UsageError].
Other errors are returned as-is.

[pflag]: https://github.com/spf13/pflag
*/
package cli
