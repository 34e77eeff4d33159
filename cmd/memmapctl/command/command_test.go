//go:build unit

package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gostonefire/memhashmap"
)

func TestRunMenu(t *testing.T) {
	t.Run("drives insert retrieve and remove", func(t *testing.T) {
		// Prepare
		hm, _, err := memhashmap.NewMemHashMap(16, nil)
		assert.NoError(t, err, "creates hash map")

		in := strings.NewReader("1\nfoo\n42\n2\nfoo\n3\nfoo\n3\nfoo\n5\n")
		var out bytes.Buffer

		// Execute
		err = runMenu(hm, in, &out)

		// Check
		assert.NoError(t, err, "menu runs to exit")
		assert.Contains(t, out.String(), "Inserted (foo, 42) into the Hash Table.", "reports insert")
		assert.Contains(t, out.String(), "Value at key 'foo' is 42.", "reports retrieve")
		assert.Contains(t, out.String(), "Key 'foo' has been removed.", "reports remove")
		assert.Contains(t, out.String(), "Key 'foo' not found.", "reports remove of absent key")
		assert.Contains(t, out.String(), "Exiting program.", "reports exit")
	})

	t.Run("reports table full and not found", func(t *testing.T) {
		// Prepare
		hm, _, err := memhashmap.NewMemHashMap(1, nil)
		assert.NoError(t, err, "creates hash map")

		in := strings.NewReader("1\na\n1\n1\nb\n2\n2\nb\n5\n")
		var out bytes.Buffer

		// Execute
		err = runMenu(hm, in, &out)

		// Check
		assert.NoError(t, err, "menu runs to exit")
		assert.Contains(t, out.String(), "hash table is full", "reports full table")
		assert.Contains(t, out.String(), "key not found", "reports missing key")
	})

	t.Run("rejects invalid choice and value", func(t *testing.T) {
		// Prepare
		hm, _, err := memhashmap.NewMemHashMap(16, nil)
		assert.NoError(t, err, "creates hash map")

		in := strings.NewReader("9\n1\nfoo\nbar\n5\n")
		var out bytes.Buffer

		// Execute
		err = runMenu(hm, in, &out)

		// Check
		assert.NoError(t, err, "menu runs to exit")
		assert.Contains(t, out.String(), "Invalid choice. Please try again.", "reports invalid choice")
		assert.Contains(t, out.String(), "value must be an integer", "reports invalid value")
	})

	t.Run("ends cleanly when input runs dry", func(t *testing.T) {
		// Prepare
		hm, _, err := memhashmap.NewMemHashMap(16, nil)
		assert.NoError(t, err, "creates hash map")

		in := strings.NewReader("1\nfoo\n")
		var out bytes.Buffer

		// Execute
		err = runMenu(hm, in, &out)

		// Check
		assert.NoError(t, err, "no error on exhausted input")
	})
}

func TestRunBench(t *testing.T) {
	t.Run("measures three phases", func(t *testing.T) {
		// Prepare
		hm, _, err := memhashmap.NewMemHashMap(15000, nil)
		assert.NoError(t, err, "creates hash map")

		var out bytes.Buffer

		// Execute
		runBench(hm, 500, &out)

		// Check
		assert.Contains(t, out.String(), "Performance for 500 operations:", "reports operation count")
		assert.Contains(t, out.String(), "Insert", "reports insert phase")
		assert.Contains(t, out.String(), "Retrieve", "reports retrieve phase")
		assert.Contains(t, out.String(), "Remove", "reports remove phase")
	})

	t.Run("reports full table instead of failing", func(t *testing.T) {
		// Prepare
		hm, _, err := memhashmap.NewMemHashMap(10, nil)
		assert.NoError(t, err, "creates hash map")

		var out bytes.Buffer

		// Execute
		runBench(hm, 1000, &out)

		// Check
		assert.Contains(t, out.String(), "hash table is full", "reports full table")
	})
}

func TestNewCommand(t *testing.T) {
	t.Run("wires subcommands and capacity flag", func(t *testing.T) {
		// Execute
		cmd := NewCommand()

		// Check
		names := make([]string, 0, 2)
		for _, sub := range cmd.Commands() {
			names = append(names, sub.Name())
		}
		assert.Contains(t, names, "repl", "repl command registered")
		assert.Contains(t, names, "bench", "bench command registered")

		flag := cmd.PersistentFlags().Lookup("capacity")
		assert.NotNil(t, flag, "capacity flag registered")
		assert.Equal(t, "15000", flag.DefValue, "default capacity matches original driver")
	})
}
