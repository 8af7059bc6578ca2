package responder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildScript(t *testing.T) {
	got := BuildScript(Values{APIKey: "key", ProjectID: "proj", AppID: "1:2:web:3"})

	want := "\n<script>\n" +
		"// Environment variables injected by server\n" +
		"window.VITE_FIREBASE_API_KEY = \"key\";\n" +
		"window.VITE_FIREBASE_PROJECT_ID = \"proj\";\n" +
		"window.VITE_FIREBASE_APP_ID = \"1:2:web:3\";\n" +
		"</script>\n"
	assert.Equal(t, want, got)
}

func TestBuildScript_Escaping(t *testing.T) {
	got := BuildScript(Values{APIKey: `a"b\c`, ProjectID: "</script><script>alert(1)", AppID: "line\nbreak"})

	assert.Contains(t, got, `window.VITE_FIREBASE_API_KEY = "a\"b\\c";`)
	assert.Contains(t, got, `window.VITE_FIREBASE_APP_ID = "line\nbreak";`)
	assert.NotContains(t, got, "</script><script>")
	assert.Equal(t, 1, strings.Count(got, "</script>"))
}

func TestInject(t *testing.T) {
	block := []byte("<!--cfg-->")

	tests := []struct {
		name    string
		content string
		want    string
		ok      bool
	}{
		{
			name:    "BeforeHeadClose",
			content: "<html><head><title>t</title></head><body/></html>",
			want:    "<html><head><title>t</title><!--cfg--></head><body/></html>",
			ok:      true,
		},
		{
			name:    "FirstMarkerOnly",
			content: "<head></head><pre></head></pre>",
			want:    "<head><!--cfg--></head><pre></head></pre>",
			ok:      true,
		},
		{
			name:    "CaseSensitive",
			content: "<HTML><HEAD></HEAD></HTML>",
			want:    "<HTML><HEAD></HEAD></HTML>",
			ok:      false,
		},
		{
			name:    "NoMarker",
			content: "<p>fragment</p>",
			want:    "<p>fragment</p>",
			ok:      false,
		},
		{
			name:    "Empty",
			content: "",
			want:    "",
			ok:      false,
		},
		{
			name:    "MultiByte",
			content: "<head><title>héllo ☃</title></head>",
			want:    "<head><title>héllo ☃</title><!--cfg--></head>",
			ok:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Inject([]byte(tt.content), block)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
