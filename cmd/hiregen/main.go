package main

import (
	"hiregen/cmd/handlers"
	"hiregen/internal/logger"
)

func main() {
	logger.Init()
	handlers.Execute()
}
