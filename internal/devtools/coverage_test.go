package devtools

import "testing"

func TestParseCoveragePercent(t *testing.T) {
	cases := []struct {
		name   string
		output string
		want   float64
		wantOK bool
	}{
		{
			name:   "go cover func total line",
			output: "github.com/x/y/task.go:10:\tNextID\t100.0%\ntotal:\t(statements)\t87.5%\n",
			want:   87.5,
			wantOK: true,
		},
		{
			name:   "uppercase tabular total",
			output: "Name    Stmts  Miss  Cover\ntasks.py   120     9    92%\nTOTAL      120     9    92%\n",
			want:   92,
			wantOK: true,
		},
		{
			name:   "no total line",
			output: "ok  \tgithub.com/x/y\t0.012s\n",
			wantOK: false,
		},
		{
			name:   "empty output",
			output: "",
			wantOK: false,
		},
		{
			name:   "total mid-line is ignored",
			output: "subtotal 50%\n",
			wantOK: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseCoveragePercent(tc.output)
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if ok && got != tc.want {
				t.Errorf("expected %.1f, got %.1f", tc.want, got)
			}
		})
	}
}
