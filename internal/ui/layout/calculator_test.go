package layout

import "testing"

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ContentOpts
		want         int
	}{
		{
			name:         "bare window",
			windowHeight: 40,
			want:         40,
		},
		{
			name:         "header and status",
			windowHeight: 40,
			opts:         ContentOpts{HeaderBarHeight: 1, StatusHeight: 1},
			want:         38,
		},
		{
			name:         "with help line",
			windowHeight: 40,
			opts:         ContentOpts{HeaderBarHeight: 1, StatusHeight: 1, HelpHeight: 1},
			want:         37,
		},
		{
			name:         "with errors",
			windowHeight: 40,
			opts:         ContentOpts{HeaderBarHeight: 1, StatusHeight: 1, ErrorCount: 2},
			want:         36,
		},
		{
			name:         "never negative",
			windowHeight: 2,
			opts:         ContentOpts{HeaderBarHeight: 1, StatusHeight: 1, HelpHeight: 1},
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentHeight(tt.windowHeight, tt.opts)
			if got != tt.want {
				t.Errorf("ContentHeight() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMaxVisibleDays(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{7, 1},
		{8, 1},
		{80, 10},
		{200, 25},
	}
	for _, tt := range tests {
		if got := MaxVisibleDays(tt.width); got != tt.want {
			t.Errorf("MaxVisibleDays(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}
