// Package cli implements the sealctl command tree.
package cli
