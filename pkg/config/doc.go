// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Each adapter package declares its own Config struct with `env` tags;
// the worker entry point loads them all once at startup and hands them
// to the adapter constructors. Nothing in the core reads the environment
// after that point.
package config
