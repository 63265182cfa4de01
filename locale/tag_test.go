package locale

import "testing"

func TestTagString(t *testing.T) {
	tests := []struct {
		name string
		tag  Tag
		want string
	}{
		{
			name: "language only",
			tag:  Tag{Language: "en"},
			want: "en",
		},
		{
			name: "language and region",
			tag:  Tag{Language: "zh", Region: "CN"},
			want: "zh-CN",
		},
		{
			name: "language and script",
			tag:  Tag{Language: "zh", Script: "Hans"},
			want: "zh-Hans",
		},
		{
			name: "full tag",
			tag:  Tag{Language: "zh", Script: "Hans", Region: "CN"},
			want: "zh-Hans-CN",
		},
		{
			name: "zero value",
			tag:  Tag{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tag.String(); got != tt.want {
				t.Errorf("Tag.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTagEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Tag
		want bool
	}{
		{
			name: "identical full tags",
			a:    Tag{Language: "zh", Script: "Hans", Region: "CN"},
			b:    Tag{Language: "zh", Script: "Hans", Region: "CN"},
			want: true,
		},
		{
			name: "both absent fields",
			a:    Tag{Language: "en"},
			b:    Tag{Language: "en"},
			want: true,
		},
		{
			name: "absent vs present region",
			a:    Tag{Language: "en"},
			b:    Tag{Language: "en", Region: "US"},
			want: false,
		},
		{
			name: "different script",
			a:    Tag{Language: "zh", Script: "Hans"},
			b:    Tag{Language: "zh", Script: "Hant"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal() 反向 = %v, want %v", got, tt.want)
			}
		})
	}
}
