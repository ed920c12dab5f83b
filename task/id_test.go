package task

import "testing"

func TestNextID(t *testing.T) {
	cases := []struct {
		name  string
		tasks []Task
		want  int
	}{
		{
			name:  "empty collection",
			tasks: nil,
			want:  1,
		},
		{
			name:  "single task",
			tasks: []Task{{ID: 1}},
			want:  2,
		},
		{
			name:  "gap after deletion",
			tasks: []Task{{ID: 1}, {ID: 5}},
			want:  6,
		},
		{
			name:  "unordered ids",
			tasks: []Task{{ID: 7}, {ID: 2}, {ID: 4}},
			want:  8,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextID(tc.tasks)
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
			for _, existing := range tc.tasks {
				if got == existing.ID {
					t.Fatalf("NextID returned existing ID %d", got)
				}
			}
		})
	}
}
