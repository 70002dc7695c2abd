package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

const SecretKeyBytesLen = 32

// Print ready to use .env lines with freshly generated token secrets
func run(w io.Writer, random io.Reader, args []string) error {
	flags := pflag.NewFlagSet("gensecret", pflag.ContinueOnError)
	size := flags.IntP("bytes", "b", SecretKeyBytesLen, "Secret length in bytes")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *size < 16 {
		return fmt.Errorf("secret has to be at least 16 bytes, got %d", *size)
	}

	for _, key := range []string{"JWT_SECRET", "JWT_REFRESH_SECRET"} {
		b := make([]byte, *size)
		if _, err := io.ReadFull(random, b); err != nil {
			return fmt.Errorf("error while generating secret key: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s=%s\n", key, hex.EncodeToString(b)); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	if err := run(os.Stdout, rand.Reader, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
