// Command provision creates an admin account in the API database. It reads
// the same configuration as the server.
package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/desawisata/internal/provision"
	"github.com/dmitrijs2005/desawisata/internal/server"
	"github.com/dmitrijs2005/desawisata/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	cfg.LogLevel = "error"

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	if err := provision.Run(ctx, app.Services().Auth, os.Stdin, os.Stdout); err != nil {
		log.Printf("%v", err)
		return
	}
}
