package main

import (
	"os"

	"github.com/sunfmin/mymath/pkg/smoke"
)

func main() {
	os.Exit(smoke.Run(os.Stdout, smoke.DefaultOps()))
}
