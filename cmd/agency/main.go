// Package main is the entry point for the agency content backend.
// All wiring lives in the command package; no business logic belongs here.
package main

import "github.com/leguidebj/agency-backend/cmd/agency/command"

func main() {
	command.Execute()
}
