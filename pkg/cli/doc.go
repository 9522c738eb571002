/*
Package cli provides command-line interface utilities for qbexport.

The cli package includes output formatters, typed command errors, and signal
handling shared by the qbexport commands.

Output Formatting:

Command results can be printed as text or JSON:

	formatter, err := cli.NewFormatter(cli.FormatJSON)
	if err != nil {
		return err
	}
	if err := formatter.FormatTo(os.Stdout, summary); err != nil {
		return err
	}

Text output uses the value's String method when it has one.

Signal Handling:

For graceful shutdown of watch and schedule modes on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(context.Background())
	defer stop()
*/
package cli
