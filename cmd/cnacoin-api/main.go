package main

import (
	"fmt"
	"os"

	"github.com/cnagroup/cnacoin/config"
	"github.com/cnagroup/cnacoin/models"
	"github.com/cnagroup/cnacoin/mq_client"
	"github.com/cnagroup/cnacoin/routes"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if os.Getenv("DATABASE_AUTOMIGRATE") == "true" {
		if err := models.Migrate(config.DataBase); err != nil {
			config.Logger.Fatalf("Migration failed: %v", err)
		}
	}

	if err := mq_client.Connect(); err != nil {
		config.Logger.Warnf("AMQP unavailable, events disabled: %v", err)
	}

	port := os.Getenv("API_PORT")
	if len(port) == 0 {
		port = "3000"
	}

	r := routes.SetupRouter()
	r.Listen(":" + port)
}
