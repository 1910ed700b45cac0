package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/23WH1A0515/Arogyasetu/api/handlers"
	"github.com/23WH1A0515/Arogyasetu/api/scheduler"
	"github.com/23WH1A0515/Arogyasetu/config"
)

func main() {
	// .env is a local convenience, deployed pods set real env vars
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil { //initialize database, snapshot and router
		zap.S().Fatalw("failed to start arogyasetu-api", "error", err)
	}

	ids := make([]string, 0)
	for _, h := range a.Agent.Hospitals() {
		ids = append(ids, h.ID)
	}
	sched := scheduler.NewScheduler(a.InflowDB, a.Agent, ids, rand.New(rand.NewSource(time.Now().UnixNano())))
	sched.Start()

	port := os.Getenv("PORT")
	baseURL := os.Getenv("BASE_URL")
	zap.S().Infow("arogyasetu-api is up and running",
		"port", port,
		"url", baseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
