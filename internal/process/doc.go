// Package process terminates the headless browser used for snapshots.
package process
