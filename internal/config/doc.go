// Package config loads build options from TOML.
//
// Example build.toml:
//
//	staging_dir = "_generated"
//	max_menu_items = 8
//	synced_bits_budget = 256
//	force_explicit_values = false
//	log_level = "info"
package config
