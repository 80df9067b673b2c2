// Package logx configures hwbot's structured logging.
//
// This repo uses a small wrapper (logx.Logger) on top of zerolog to keep:
//   - Console output readable (short timestamp + short caller)
//   - File output JSON-structured and append-only
//
// There is deliberately no Telegram sink: the chat is where the poller
// delivers user-facing notifications, and mirroring log lines there would
// double-send every failure.
package logx
