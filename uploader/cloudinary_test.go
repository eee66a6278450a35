package uploader

import "testing"

func TestUploadFolder(t *testing.T) {
	tests := []struct {
		name string
		root string
		hint string
		want string
	}{
		{"category hint", "sintnew", CategoryFolder, "sintnew/categories"},
		{"product default", "sintnew", "", "sintnew"},
		{"trailing slash on root", "sintnew/", CategoryFolder, "sintnew/categories"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UploadFolder(tt.root, tt.hint); got != tt.want {
				t.Errorf("UploadFolder(%q, %q) = %q; want %q", tt.root, tt.hint, got, tt.want)
			}
		})
	}
}
