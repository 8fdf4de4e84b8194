//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when no target is specified.
var Default = Test

// Test runs the full unit test suite.
func Test() error {
	fmt.Println("running tests...")
	return sh.RunV("go", "test", "-v", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	fmt.Println("vetting...")
	return sh.RunV("go", "vet", "./...")
}

// Build compiles the demo command.
func Build() error {
	fmt.Println("building demo...")
	return sh.RunV("go", "build", "-o", "bin/demo", "./cmd/demo")
}

// Clean removes build artifacts.
func Clean() error {
	fmt.Println("cleaning...")
	return sh.Rm("bin")
}

// Tidy tidies go.mod.
func Tidy() error {
	fmt.Println("tidying go.mod...")
	return sh.RunV("go", "mod", "tidy")
}

// CI runs the full pre-commit pipeline: vet then test.
func CI() error {
	mg.SerialDeps(Vet, Test)
	return nil
}
