// Command mazegrid runs pathfinding comparison suites over tokenized maze
// files and solves n-queens boards by stochastic hill climbing.
package main

import "os"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
