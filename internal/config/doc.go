// Package config loads ucli settings from ~/.config/ucli/config.yaml and
// UCLI_* environment variables.
//
// Example file:
//
//	log_level: warn
//	select:
//	  message: Pick one
//	prompt:
//	  history_limit: 50
//	theme:
//	  header: "4"
//	  info: "2"
//	  highlight: "205"
package config
