// Package utils provides common conversion helpers shared by the HTTP
// handlers and the CLI, such as parsing media ids from path params and flags.
package utils
