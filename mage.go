//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput                 = "gen"
	sqliteBackupsFileLocation = "backups.sqlite"
	leagueBin                 = "./bin/league"
)

const (
	toolsBinDir = "tools/bin/"
	lintTool    = toolsBinDir + "golangci-lint"
	jetTool     = toolsBinDir + "jet"
)

func goInstall(pkg string) error {
	bin, err := filepath.Abs(toolsBinDir)
	if err != nil {
		return err
	}
	return sh.RunWith(map[string]string{
		"GOBIN":       bin,
		"CGO_ENABLED": "1",
	}, "go", "install", pkg)
}

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds the league binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-o", leagueBin, "./cmd/league")
}

// Test runs unit tests
func Test() error {
	mg.Deps(goModDownload)
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "test", "-race", "./...")
}

// GenJet regenerates gen/ from a migrated backups database
func GenJet() error {
	mg.Deps(Build, buildJetTool)
	if _, err := os.Stat(sqliteBackupsFileLocation); os.IsNotExist(err) {
		if err := sh.Run(leagueBin, "backups"); err != nil {
			return err
		}
	}
	return sh.Run(jetTool, "-source", "sqlite", "-dsn", sqliteBackupsFileLocation, "-path", jetOutput)
}

func buildJetTool() error {
	return goInstall("github.com/go-jet/jet/v2/cmd/jet@v2.9.0")
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return goInstall("github.com/golangci/golangci-lint/cmd/golangci-lint@v1.52.2")
}
