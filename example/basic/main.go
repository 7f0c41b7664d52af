// Package main demonstrates basic usage of the ask library.
package main

import (
	"fmt"
	"log"

	"github.com/nao1215/ask"
)

func main() {
	session := ask.New()

	// Default modifiers run on every answer.
	session.Use(ask.TrimSpace(), ask.ToLower())

	name, err := session.Ask("What is your name? ").AsString()
	if err != nil {
		log.Fatal(err)
	}

	// Per-call modifiers run after the defaults.
	greeting := ask.ModifierFunc(func(s string) (string, error) {
		return "hello, " + s + "!", nil
	})
	message, err := session.Ask("Say it again: ").AsString(greeting)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("name=%q message=%q\n", name, message)
}
