package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"mise.backend/pkg/crypto"
)

var (
	hashKey       = crypto.HashKey
	generateToken = crypto.GenerateRandomToken
)

// run prints the bcrypt hash for ADMIN_KEY_HASH. With no key it generates one and prints both.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("genhash", flag.ContinueOnError)
	fs.SetOutput(out)
	key := fs.String("key", "", "admin key to hash (generated when empty)")
	cost := fs.Int("cost", crypto.DefaultCost, "bcrypt cost")
	if err := fs.Parse(args); err != nil {
		return err
	}

	generated := false
	if *key == "" {
		token, err := generateToken(24)
		if err != nil {
			return err
		}
		*key = token
		generated = true
	}

	hash, err := hashKey(*key, *cost)
	if err != nil {
		return err
	}
	if generated {
		fmt.Fprintf(out, "ADMIN_KEY=%s\n", *key)
	}
	fmt.Fprintf(out, "ADMIN_KEY_HASH=%s\n", hash)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
