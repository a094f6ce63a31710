package records

import "testing"

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"lab results.pdf", "lab results.pdf"},
		{`a<b>c:d"e/f\g|h?i*j.txt`, "a_b_c_d_e_f_g_h_i_j.txt"},
		{"  spaced   name  .pdf", "spaced name .pdf"},
		{"trailing dots...", "trailing dots"},
		{"trailing space .", "trailing space"},
		{"...", "file"},
		{"", "file"},
		{"???", "___"},
		{"tabs\tand\nnewlines.txt", "tabs and newlines.txt"},
	}
	for _, tc := range cases {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
