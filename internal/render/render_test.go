package render

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/sadopc/sqlrepl/internal/adapter"
)

func testResult() *adapter.Result {
	return &adapter.Result{
		Columns: []string{"id", "name"},
		Rows: [][]string{
			{"1", "alice"},
			{"2", "bob, the builder"},
		},
		RowCount: 2,
	}
}

func TestTable(t *testing.T) {
	var b strings.Builder
	if err := Table(&b, testResult()); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	for _, want := range []string{"id", "name", "alice", "(2 rows)"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestTableNoRowSet(t *testing.T) {
	var b strings.Builder
	err := Table(&b, &adapter.Result{Message: "3 rows affected"})
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(b.String()); got != "3 rows affected" {
		t.Errorf("got %q, want status message", got)
	}
}

func TestCSV(t *testing.T) {
	var b strings.Builder
	if err := CSV(&b, testResult()); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(strings.NewReader(b.String())).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0][0] != "id" || records[0][1] != "name" {
		t.Errorf("header = %v", records[0])
	}
	// The comma in the value must survive the round trip.
	if records[2][1] != "bob, the builder" {
		t.Errorf("cell = %q", records[2][1])
	}
}

func TestResultString(t *testing.T) {
	out := ResultString(testResult(), FormatCSV)
	if !strings.HasPrefix(out, "id,name") {
		t.Errorf("unexpected csv output: %q", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("trailing newline not trimmed")
	}
}
