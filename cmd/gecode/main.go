// Command gecode drives the bundled demonstration models (n-queens,
// send-more-money, magic-square) through the DFS search engine and prints
// solutions plus engine statistics.
package main

import (
	"log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("gecode: %v", err)
	}
}
