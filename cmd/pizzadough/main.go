package main

import (
	"github.com/joho/godotenv"

	"github.com/aalvaropc/pizzadough/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
