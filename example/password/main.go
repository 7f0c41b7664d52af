// Package main demonstrates masked (password-style) entry.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/ask"
)

func main() {
	session := ask.New()

	secret, err := session.Ask("Password: ", ask.Hidden()).AsString()
	if err != nil {
		if errors.Is(err, ask.ErrInterrupted) {
			fmt.Println("cancelled")
			return
		}
		log.Fatal(err)
	}
	fmt.Printf("Got %d characters.\n", len(secret))

	// A custom placeholder character, and NonEmpty to reject blank input.
	pin, err := session.Ask("PIN: ", ask.HiddenWith("#")).AsString(ask.NonEmpty())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("PIN has %d digits.\n", len(pin))
}
