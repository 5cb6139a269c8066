package main

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"syscall"

	"golang.org/x/term"

	dycrypt "github.com/DiogenesYazan/DyCrypt"
)

func getPassphrase(prompt string) ([]byte, error) {
	// First check environment variable
	if envPass := os.Getenv(passphraseEnvVar); envPass != "" {
		return []byte(envPass), nil
	}

	return readPassword(prompt)
}

func getPassphraseWithConfirm(prompt, confirmPrompt string) ([]byte, error) {
	// First check environment variable
	if envPass := os.Getenv(passphraseEnvVar); envPass != "" {
		return []byte(envPass), nil
	}

	passphrase, err := readPassword(prompt)
	if err != nil {
		return nil, err
	}

	confirm, err := readPassword(confirmPrompt)
	if err != nil {
		dycrypt.Zero(passphrase)
		return nil, err
	}

	if !bytes.Equal(passphrase, confirm) {
		dycrypt.Zero(passphrase)
		dycrypt.Zero(confirm)
		return nil, fmt.Errorf("passphrases do not match")
	}

	dycrypt.Zero(confirm)
	return passphrase, nil
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)

	var passphrase []byte
	var err error

	if term.IsTerminal(int(syscall.Stdin)) {
		// STDIN is a terminal, use secure input
		passphrase, err = term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
	} else {
		// STDIN is not a terminal (piped), try to read from /dev/tty
		tty, ttyErr := os.Open("/dev/tty")
		if ttyErr != nil {
			// On Windows or when /dev/tty is not available
			if runtime.GOOS == "windows" {
				return nil, fmt.Errorf("passphrase must be set via %s environment variable when STDIN is piped", passphraseEnvVar)
			}
			return nil, fmt.Errorf("cannot read passphrase: STDIN is piped and /dev/tty is not available. Set %s environment variable", passphraseEnvVar)
		}
		defer tty.Close()

		passphrase, err = term.ReadPassword(int(tty.Fd()))
		fmt.Fprintln(os.Stderr)
	}

	if err != nil {
		return nil, err
	}

	return passphrase, nil
}
