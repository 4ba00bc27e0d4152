// Package loader builds executable program accounts from compiled program
// files (.so images produced by the SBF toolchain).
package loader

import (
	"crypto/ed25519"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/dvrvsimi/solana-accountgen/pkg/accountgen"
	"github.com/dvrvsimi/solana-accountgen/pkg/solana"
)

var ErrProgramFileNotFound = errors.New("program file not found")

// defaultProgramDirs returns the directories searched for program files, in
// priority order. SBF_OUT_DIR (or the legacy BPF_OUT_DIR) wins, followed by
// the conventional cargo output and fixture directories.
func defaultProgramDirs() []string {
	var dirs []string
	if outDir := os.Getenv("SBF_OUT_DIR"); outDir != "" {
		dirs = append(dirs, outDir)
	} else if outDir := os.Getenv("BPF_OUT_DIR"); outDir != "" {
		dirs = append(dirs, outDir)
	}

	dirs = append(dirs, filepath.Join("target", "deploy"))
	dirs = append(dirs, filepath.Join("tests", "fixtures"))

	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}

	return dirs
}

// FindProgramFile searches the default directories for filename and returns
// the first match.
func FindProgramFile(filename string) (string, error) {
	for _, dir := range defaultProgramDirs() {
		candidate := filepath.Join(dir, filename)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", errors.Wrap(ErrProgramFileNotFound, filename)
}

// NewProgramAccount builds an executable, rent-exempt account holding the
// provided program image, owned by the given loader program.
func NewProgramAccount(programData []byte, loaderID ed25519.PublicKey) (solana.Account, error) {
	return accountgen.NewAccountBuilder().
		WithBalance(solana.DefaultRent().MinimumBalance(len(programData))).
		WithOwner(loaderID).
		WithRawData(programData).
		WithExecutable(true).
		Build()
}

// NewProgramAccountFromFile locates filename in the default search paths,
// reads it, and builds an executable account from its contents.
func NewProgramAccountFromFile(filename string, loaderID ed25519.PublicKey) (solana.Account, error) {
	path, err := FindProgramFile(filename)
	if err != nil {
		return solana.Account{}, err
	}

	programData, err := os.ReadFile(path)
	if err != nil {
		return solana.Account{}, errors.Wrap(err, "error reading program file")
	}

	return NewProgramAccount(programData, loaderID)
}
