// Command parcelctl is the operator CLI of the parcel API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

func main() {
	if err := newRootCommand(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
