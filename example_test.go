package runmerge_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/hupe1980/runmerge"
	"github.com/hupe1980/runmerge/blobstore"
	"github.com/hupe1980/runmerge/sink"
)

// Example demonstrates merging two in-memory sources keyed on the first column.
func Example() {
	store := blobstore.NewMemoryStore()
	store.PutString("A", "0.3 x\n0.1 y\n")
	store.PutString("B", "0.2 z\n")

	report, err := runmerge.Merge(context.Background(), store, sink.NewWriter("stdout", os.Stdout),
		runmerge.WithColumn(0),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("emitted:", report.Emitted)
	// Output:
	// 0.1 y
	// 0.2 z
	// 0.3 x
	// emitted: 3
}

// Example_header demonstrates header handling and the default key column.
func Example_header() {
	store := blobstore.NewMemoryStore()
	store.PutString("scores.txt", "name team score\nann red 7.5\nbob blue 2\n")
	store.PutString("more.txt", "name team score\ncid red 4\n")

	_, err := runmerge.Merge(context.Background(), store, sink.NewWriter("stdout", os.Stdout),
		runmerge.WithHeader(true),
	)
	if err != nil {
		log.Fatal(err)
	}
	// Output:
	// bob blue 2
	// cid red 4
	// ann red 7.5
}

// Example_skippedSource demonstrates that a malformed source is dropped whole.
func Example_skippedSource() {
	store := blobstore.NewMemoryStore()
	store.PutString("good", "1 a\n2 a\n")
	store.PutString("bad", "0 b\nzero b\n")

	report, err := runmerge.Merge(context.Background(), store, sink.NewWriter("stdout", os.Stdout),
		runmerge.WithColumn(0),
	)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range report.Failures {
		fmt.Println("skipped:", f.Name, runmerge.ErrorKind(f.Err))
	}
	// Output:
	// 1 a
	// 2 a
	// skipped: bad invalid_number
}
