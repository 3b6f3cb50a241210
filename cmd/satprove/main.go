// Command satprove is a refutation-based automated theorem prover
// for classical first-order logic with equality, reading TPTP-3
// cnf/fof input and reporting an SZS-style verdict.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
