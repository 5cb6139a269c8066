package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	dycrypt "github.com/DiogenesYazan/DyCrypt"
)

const (
	version = "1.0.0"

	// Environment variable for passphrase
	passphraseEnvVar = "DYCRYPT_PASSPHRASE"
)

type config struct {
	Encrypt bool   `short:"e" long:"encrypt" description:"Encrypt input to a DyCrypt container"`
	Decrypt bool   `short:"d" long:"decrypt" description:"Decrypt a DyCrypt container"`
	Input   string `short:"i" long:"in" description:"Input file (default: stdin)"`
	Output  string `short:"o" long:"out" description:"Output file (default: stdout)"`
	Base64  bool   `short:"b" long:"base64" description:"Base64 container encoding (text-safe but 33% larger)"`
	Version bool   `short:"v" long:"version" description:"Print version and exit"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file may carry DYCRYPT_PASSPHRASE; ignore its absence.
	_ = godotenv.Load()

	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}

	if cfg.Version {
		fmt.Fprintf(os.Stderr, "dycrypt version %s\n", version)
		return nil
	}

	if cfg.Encrypt == cfg.Decrypt {
		return fmt.Errorf("specify exactly one of --encrypt or --decrypt")
	}

	input, err := readInput(cfg.Input)
	if err != nil {
		return err
	}

	if cfg.Encrypt {
		return encrypt(cfg, input)
	}
	return decrypt(cfg, input)
}

func encrypt(cfg config, plaintext []byte) error {
	passphrase, err := getPassphraseWithConfirm("Enter passphrase: ", "Confirm passphrase: ")
	if err != nil {
		return fmt.Errorf("failed to get passphrase: %w", err)
	}
	defer dycrypt.Zero(passphrase)

	if len(passphrase) == 0 {
		return fmt.Errorf("passphrase cannot be empty")
	}

	container, err := dycrypt.Seal(passphrase, plaintext)
	if err != nil {
		return fmt.Errorf("encryption failed: %w", err)
	}

	if cfg.Base64 {
		encoded := make([]byte, base64.StdEncoding.EncodedLen(len(container)))
		base64.StdEncoding.Encode(encoded, container)
		container = append(encoded, '\n')
	}

	return writeOutput(cfg.Output, container)
}

func decrypt(cfg config, container []byte) error {
	if cfg.Base64 {
		trimmed := bytes.TrimSpace(container)
		decoded := make([]byte, base64.StdEncoding.DecodedLen(len(trimmed)))
		n, err := base64.StdEncoding.Decode(decoded, trimmed)
		if err != nil {
			return fmt.Errorf("invalid base64 container: %w", err)
		}
		container = decoded[:n]
	}

	passphrase, err := getPassphrase("Enter passphrase: ")
	if err != nil {
		return fmt.Errorf("failed to get passphrase: %w", err)
	}
	defer dycrypt.Zero(passphrase)

	if len(passphrase) == 0 {
		return fmt.Errorf("passphrase cannot be empty")
	}

	plaintext, err := dycrypt.Open(passphrase, container)
	if err != nil {
		return err
	}

	return writeOutput(cfg.Output, plaintext)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
