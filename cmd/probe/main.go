package main

import (
	"fmt"
	"log"

	"github.com/ecc1/sx1262"
)

func main() {
	r := sx1262.Open()
	if r.Error() != nil {
		log.Fatal(r.Error())
	}
	if err := r.Initialize(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("version: %#02x\n", r.Version())
	fmt.Printf("state: %s\n", r.State())
	fmt.Printf("old frequency: %d\n", r.Frequency())
	if err := r.SetFrequency(868000000); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("new frequency: %d\n", r.Frequency())
}
