// Package logger wraps zerolog with pipeline-aware helpers.
//
// Every pipeline stage obtains a component-tagged logger via WithComponent,
// and every run attaches its run ID via WithRun so a single recording's log
// lines can be correlated end to end.
package logger
