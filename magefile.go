//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build everything
var Default = Build

// Build builds the library and the binaries
func Build() error {
	return sh.RunV("go", "build", "./...")
}

// Test runs the test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet and staticcheck when available
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	if err := sh.RunV("staticcheck", "./..."); err != nil {
		fmt.Println("staticcheck not available or failed (install: go install honnef.co/go/tools/cmd/staticcheck@latest)")
	}
	return nil
}

// QA runs the full quality gate
func QA() error {
	mg.SerialDeps(Lint, Test, Build)
	return nil
}
