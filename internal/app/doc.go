// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle — load
// items, generate the card set, render one page per card — decoupled from
// any specific entrypoint like a CLI.
package app
