// Package logx configures tgkeys' structured logging.
//
// This repo uses a small wrapper (logx.Logger) on top of zerolog to keep:
//   - Console output readable (short timestamp + short caller)
//   - File output JSON-structured
//   - Keyboard output on stdout untouched (logs go to stderr)
package logx
