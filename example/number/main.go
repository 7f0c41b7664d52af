// Package main demonstrates numeric answers and numeric modifiers.
package main

import (
	"fmt"
	"log"
	"math"

	"github.com/nao1215/ask"
)

func main() {
	session := ask.New()
	session.Use(ask.TrimSpace())

	age, err := session.Ask("How old are you? ").AsNumber(ask.Clamp(0, 130))
	if err != nil {
		log.Fatal(err)
	}
	if math.IsNaN(age) {
		fmt.Println("That was not a number.")
		return
	}

	next, err := session.Ask("Favorite number? ").AsNumber(
		ask.NumberModifierFunc(func(n float64) (float64, error) {
			return n + 1, nil
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("age=%.0f, favorite+1=%v\n", age, next)
}
