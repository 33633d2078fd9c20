// Command knapsack solves and visualises 0/1 knapsack instances.
package main

import "github.com/katalvlaran/knapsack/internal/cli"

func main() {
	cli.Execute()
}
