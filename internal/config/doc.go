// Package config loads numconv's YAML settings.
//
// The file is optional: a missing file yields DefaultConfig. Environment
// variables NUMCONV_DEFAULT_BASE, NUMCONV_ECHO_POLICY, NUMCONV_OUTPUT and
// NUMCONV_LOG_LEVEL override the file. Nothing is ever written back.
package config
