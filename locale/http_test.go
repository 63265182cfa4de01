package locale

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		acceptLanguage string
		opts           []Option
		want           Tag
	}{
		{
			name:           "parse only",
			acceptLanguage: "zh-Hans-CN",
			want:           Tag{Language: "zh", Script: "Hans", Region: "CN"},
		},
		{
			name:           "first entry wins",
			acceptLanguage: "zh-CN,zh;q=0.9,en;q=0.8",
			want:           Tag{Language: "zh", Region: "CN"},
		},
		{
			name:           "quality parameter stripped",
			acceptLanguage: "en-US;q=0.5",
			want:           Tag{Language: "en", Region: "US"},
		},
		{
			name:           "best match against supported",
			acceptLanguage: "ar-SA",
			opts:           []Option{WithSupported("en", "en-GB", "ar", "ar-EG", "de")},
			want:           Tag{Language: "ar"},
		},
		{
			name:           "no match falls back to default",
			acceptLanguage: "fr",
			opts: []Option{
				WithSupported("en", "ar", "de"),
				WithDefaultTag(Tag{Language: "en", Region: "US"}),
			},
			want: Tag{Language: "en", Region: "US"},
		},
		{
			name:           "no match without default keeps parsed tag",
			acceptLanguage: "fr",
			opts:           []Option{WithSupported("en", "ar", "de")},
			want:           Tag{Language: "fr"},
		},
		{
			name:           "empty header",
			acceptLanguage: "",
			want:           Tag{Language: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Tag

			handler := HTTPMiddleware(tt.opts...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("context tag = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHTTPMiddlewareCustomHeader(t *testing.T) {
	var got Tag

	handler := HTTPMiddleware(WithHeader("X-App-Locale"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-App-Locale", "ja_JP")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if want := (Tag{Language: "ja", Region: "JP"}); got != want {
		t.Errorf("context tag = %+v, want %+v", got, want)
	}
}

func TestFirstEntry(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "single", raw: "en-US", want: "en-US"},
		{name: "multiple entries", raw: "zh-CN,zh;q=0.9,en;q=0.8", want: "zh-CN"},
		{name: "quality on first", raw: "en;q=0.5,zh-CN;q=0.9", want: "en"},
		{name: "surrounding spaces", raw: " en-US , zh", want: "en-US"},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstEntry(tt.raw); got != tt.want {
				t.Errorf("firstEntry(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
