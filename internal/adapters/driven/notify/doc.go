// Package notify provides the notification and confirmation adapters:
// styled terminal output, an interactive yes/no prompt, fixed-answer
// prompters for unattended use and a log-only notifier for the MCP server.
package notify
