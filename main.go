package main

import (
	"log"
	"net/http"
	"os"

	"shopfront/app/cmd"
	"shopfront/app/configs"
	"shopfront/app/routes"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	router := routes.NewRouter(db)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server running on %s", env.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
