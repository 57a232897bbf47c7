package main

import (
	"os"
	"testing"
)

func TestMain_Help(t *testing.T) {
	// Help succeeds without a workspace, so main returns instead of exiting.
	os.Args = []string{"sitesheet", "--help"}
	main()
}
