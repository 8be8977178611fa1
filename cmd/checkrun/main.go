// Command checkrun gates a program's startup on the registry: it exits 0
// when the given software id is authorized to run and 1 otherwise,
// including when the registry cannot be reached.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"soft-admin/client"
)

func main() {
	var (
		server  = flag.String("server", "http://127.0.0.1:3000", "Registry base URL")
		id      = flag.Int64("id", 0, "Software id to check")
		timeout = flag.Duration("timeout", client.DefaultTimeout, "Permission call timeout")
	)
	flag.Parse()

	if *id == 0 {
		fmt.Fprintln(os.Stderr, "checkrun: -id is required")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := client.NewWithTimeout(*server, *timeout).CheckPermission(ctx, *id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "checkrun:", err)
		os.Exit(1)
	}
	if !res.CanRun {
		fmt.Fprintf(os.Stderr, "checkrun: denied: %s\n", res.Reason)
		os.Exit(1)
	}
	if res.Software != nil {
		fmt.Printf("authorized: %s %s\n", res.Software.Name, res.Software.Version)
	} else {
		fmt.Println("authorized")
	}
}
