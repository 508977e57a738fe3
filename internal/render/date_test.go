// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "testing"

func TestYear(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"iso date", "2020-05-01", "2020"},
		{"month and year", "May 2020", "2020"},
		{"bare year", "2020", "2020"},
		{"empty", "", "NA"},
		{"comma separated", "May 1, 2019", "2019"},
		{"slash separated", "01/05/2020", "2020"},
		{"no four-char segment", "May 20", "NA"},
		{"bare non-year passes through", "forthcoming", "forthcoming"},
		{"year-last wins over earlier segments", "2019-2020", "2020"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Year(tt.date); got != tt.want {
				t.Errorf("Year(%q) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}
