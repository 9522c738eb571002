// Package pipeline runs question bank exports end to end.
//
// An export run checks that the configured spreadsheet engine is available,
// loads the bank, flattens it, and writes the CSV and workbook artifacts
// (plus the optional JSON and SQLite artifacts) one after another:
//
//	exp := pipeline.NewExporter(logger, collector)
//	summary, err := exp.Run(ctx, pipeline.OptionsFromConfig(cfg))
//	if err != nil {
//		return err
//	}
//	fmt.Println(summary)
//
// Runs can be repeated when the input changes (Watcher) or on a cron
// schedule (Scheduler).
package pipeline
