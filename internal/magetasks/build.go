package magetasks

import (
	"fmt"
	"time"

	"github.com/magefile/mage/sh"
)

// Build compiles the sarif2xlsx binary with version metadata.
func Build() error {
	PrintH2Header("Build")

	flags := LDFlags(
		gitOutput("dev", "describe", "--tags", "--always", "--dirty", "--match=v*"),
		gitOutput("unknown", "rev-parse", "--short", "HEAD"),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err := Run("Go Build", "go", "build", "-ldflags", flags, "-o", BinPath, MainPackage); err != nil {
		return err
	}

	PrintSuccess(fmt.Sprintf("Built: %s", BinPath))
	return nil
}

// LDFlags returns the linker flags that stamp internal/version.
func LDFlags(version, commit, date string) string {
	pkg := ModulePath + "/internal/version"
	return fmt.Sprintf("-s -w -X '%s.Version=%s' -X '%s.CommitHash=%s' -X '%s.BuildDate=%s'",
		pkg, version, pkg, commit, pkg, date)
}

// Clean removes build artifacts.
func Clean() error {
	PrintH2Header("Clean")

	for _, path := range []string{"./bin", "coverage.out"} {
		if err := sh.Rm(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}

	PrintSuccess("Cleaned build artifacts")
	return nil
}
