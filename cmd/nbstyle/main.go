package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nbstyle/nbstyle/internal/adapters/inbound/cli"
	"github.com/nbstyle/nbstyle/internal/domain"
)

func main() {
	err := cli.Execute()
	if err == nil {
		return
	}

	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
