// extract runs the receipt parser against a single text file and prints the
// result as JSON. No database required; handy for tuning scanner rules
// against problem receipts.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"salestracker/constants"
	"salestracker/internal/extraction"
)

func main() {
	var (
		kindStr = flag.String("kind", string(constants.KindPointOfSale), "receipt kind: POS or HOME_DELIVERY")
		branch  = flag.String("branch", "", "canonical branch name to verify against (optional)")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: extract [-kind POS|HOME_DELIVERY] [-branch NAME] <textfile>")
		os.Exit(2)
	}

	kind := constants.ReceiptKind(*kindStr)
	if kind != constants.KindPointOfSale && kind != constants.KindHomeDelivery {
		fmt.Fprintf(os.Stderr, "invalid -kind %q\n", *kindStr)
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	res := extraction.NewService(logger).Extract(kind, string(data), *branch)

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
