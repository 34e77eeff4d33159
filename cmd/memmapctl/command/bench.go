package command

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gostonefire/memhashmap"
)

// NewBenchCommand returns the bench command, a timing harness measuring wall-clock duration of
// bulk insert, retrieve and remove operations against a fresh hash map
func NewBenchCommand(capacity *int64) (cmd *cobra.Command) {
	var operations int

	cmd = &cobra.Command{
		Use:   "bench",
		Short: "Timed benchmark workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			hm, info, err := memhashmap.NewMemHashMap(*capacity, nil)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Hash map created with %d slots.\n", info.Capacity)

			runBench(hm, operations, cmd.OutOrStdout())

			return nil
		},
	}

	cmd.Flags().IntVar(&operations, "operations", 1000, "number of operations per phase")

	return cmd
}

// runBench - Generates a random workload and measures wall-clock duration of three phases,
// bulk insert, bulk retrieve and bulk remove. Keys follow the pattern "key######" with a
// random six digit number, so duplicates can occur and exercise the update-in-place path.
func runBench(hm *memhashmap.MemHashMap, operations int, out io.Writer) {
	errorText := color.New(color.FgRed)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	keys := make([]string, operations)
	values := make([]int64, operations)

	insertStart := time.Now()
	for i := 0; i < operations; i++ {
		keys[i] = fmt.Sprintf("key%d", rng.Intn(900000)+100000)
		values[i] = int64(rng.Intn(900000) + 100000)
		if err := hm.Insert(keys[i], values[i]); err != nil {
			_, _ = errorText.Fprintf(out, "Error: %s (after %d inserts)\n", err, i)
			return
		}
	}
	insertDuration := time.Since(insertStart)

	retrieveStart := time.Now()
	for i := 0; i < operations; i++ {
		if _, err := hm.Retrieve(keys[i]); err != nil {
			_, _ = errorText.Fprintf(out, "Error: %s (retrieving %s)\n", err, keys[i])
			return
		}
	}
	retrieveDuration := time.Since(retrieveStart)

	// Duplicate keys in the workload were inserted once and are removed once, any further
	// remove attempt reports false which is a normal outcome
	removeStart := time.Now()
	for i := 0; i < operations; i++ {
		hm.Remove(keys[i])
	}
	removeDuration := time.Since(removeStart)

	fmt.Fprintf(out, "Performance for %d operations:\n", operations)

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Operation", "Operations", "Duration (ms)"})
	table.Append([]string{"Insert", strconv.Itoa(operations), strconv.FormatInt(insertDuration.Milliseconds(), 10)})
	table.Append([]string{"Retrieve", strconv.Itoa(operations), strconv.FormatInt(retrieveDuration.Milliseconds(), 10)})
	table.Append([]string{"Remove", strconv.Itoa(operations), strconv.FormatInt(removeDuration.Milliseconds(), 10)})
	table.Render()
}
