/*
Copyright © 2025 tranvd
*/
package main

import (
	"github.com/joho/godotenv"
	"github.com/tranvd/askbot-be/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// .env is optional, real deployments set the environment directly
	godotenv.Load()
}
